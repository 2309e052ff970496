// Command trackerctl manages the portfolio database from a terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&assetClassesCmd{}, "assets")
	commander.Register(&assetsCmd{}, "assets")
	commander.Register(&addAssetCmd{}, "assets")
	commander.Register(&renameAssetCmd{}, "assets")
	commander.Register(&deleteAssetCmd{}, "assets")

	commander.Register(&transactionsCmd{}, "transactions")
	commander.Register(&addTransactionCmd{}, "transactions")
	commander.Register(&deleteTransactionCmd{}, "transactions")

	commander.Register(&valueCmd{}, "reports")
	commander.Register(&insightsCmd{}, "reports")
	commander.Register(&dashboardCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
