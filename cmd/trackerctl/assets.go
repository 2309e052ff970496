package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"portfoliotracker/internal/report"
	"portfoliotracker/internal/validator"
)

// --- asset-classes ---

type assetClassesCmd struct{}

func (*assetClassesCmd) Name() string     { return "asset-classes" }
func (*assetClassesCmd) Synopsis() string { return "list the asset classes" }
func (*assetClassesCmd) Usage() string {
	return `asset-classes

  Lists every asset class with the id to pass to add-asset.
`
}
func (*assetClassesCmd) SetFlags(*flag.FlagSet) {}

func (*assetClassesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		classes, err := s.Assets.ListAssetClasses(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, report.AssetClasses(classes))
	})
}

// --- assets ---

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the tracked assets" }
func (*assetsCmd) Usage() string {
	return `assets

  Lists every asset with its class, ordered by ticker.
`
}
func (*assetsCmd) SetFlags(*flag.FlagSet) {}

func (*assetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		assets, err := s.Assets.ListAssets(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, report.Assets(assets))
	})
}

// --- add-asset ---

type addAssetCmd struct {
	ticker  string
	classID uint
	name    string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "start tracking a new asset" }
func (*addAssetCmd) Usage() string {
	return `add-asset -t <ticker> -c <class id> -n <name>

  Adds an asset. A ticker that is already tracked is left unchanged.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (e.g. AAPL)")
	f.UintVar(&c.classID, "c", 0, "Asset class id (see asset-classes)")
	f.StringVar(&c.name, "n", "", "Display name")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker := strings.ToUpper(strings.TrimSpace(c.ticker))
	if !validator.ValidTicker(ticker) || c.classID == 0 || strings.TrimSpace(c.name) == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		asset, created, err := s.Assets.AddAsset(ctx, ticker, c.classID, c.name)
		if err != nil {
			return err
		}
		if !created {
			fmt.Printf("%s is already tracked (id %d), nothing changed\n", asset.Ticker, asset.ID)
			return nil
		}
		fmt.Printf("Added %s (id %d)\n", asset.Ticker, asset.ID)
		return nil
	})
}

// --- rename-asset ---

type renameAssetCmd struct {
	id   uint
	name string
}

func (*renameAssetCmd) Name() string     { return "rename-asset" }
func (*renameAssetCmd) Synopsis() string { return "change an asset's display name" }
func (*renameAssetCmd) Usage() string {
	return `rename-asset -id <asset id> -n <name>
`
}

func (c *renameAssetCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.id, "id", 0, "Asset id")
	f.StringVar(&c.name, "n", "", "New display name")
}

func (c *renameAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || strings.TrimSpace(c.name) == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		if err := s.Assets.UpdateAssetName(ctx, c.id, c.name); err != nil {
			return err
		}
		fmt.Printf("Renamed asset %d\n", c.id)
		return nil
	})
}

// --- delete-asset ---

type deleteAssetCmd struct {
	id uint
}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "delete an asset and all of its transactions" }
func (*deleteAssetCmd) Usage() string {
	return `delete-asset -id <asset id>

  Deletes the asset together with every transaction recorded against it.
`
}

func (c *deleteAssetCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.id, "id", 0, "Asset id")
}

func (c *deleteAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		if err := s.Assets.DeleteAsset(ctx, c.id); err != nil {
			return err
		}
		fmt.Printf("Deleted asset %d\n", c.id)
		return nil
	})
}
