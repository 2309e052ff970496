package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"portfoliotracker/internal/cache"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/database"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/report"
	"portfoliotracker/internal/server"
)

var (
	currencyFlag = flag.String("currency", "", "Display currency, ISO 4217 code (defaults to DEFAULT_CURRENCY)")
	styleFlag    = flag.String("style", "dark", `Terminal style for reports (dark, light, notty) or "raw" for plain Markdown`)
)

// session is an open connection to the portfolio database.
type session struct {
	server.Services
	format *report.Formatter

	closers []func() error
}

// openSession loads configuration, connects to the database and applies
// migrations.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	logger.Init(cfg.Env, level)

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, err
	}
	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	// Writes from the CLI must clear aggregates cached by a running API.
	store, closeCache, err := cache.Open(ctx, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	currency := cfg.DefaultCurrency
	if *currencyFlag != "" {
		currency = *currencyFlag
	}

	return &session{
		Services: server.NewServices(dbManager.DB(), store),
		format:   report.NewFormatter(currency),
		closers:  []func() error{closeCache, dbManager.Close},
	}, nil
}

// Close releases the cache and database connections.
func (s *session) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logger.Get().Warnw("close failed", "error", err)
		}
	}
	logger.Sync()
}

// withSession opens a session, runs fn and maps its error to an exit status.
func withSession(ctx context.Context, fn func(s *session) error) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := fn(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printReport writes markdown to w, styled unless -style=raw.
func printReport(w io.Writer, markdown string) error {
	if *styleFlag == "raw" {
		_, err := io.WriteString(w, markdown)
		return err
	}
	out, err := report.Render(markdown, *styleFlag)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
