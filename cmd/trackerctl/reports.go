package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the net invested amount" }
func (*valueCmd) Usage() string {
	return `value

  Shows the sum of all buys minus the sum of all sells. Dividends are not
  counted.
`
}
func (*valueCmd) SetFlags(*flag.FlagSet) {}

func (*valueCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		value, err := s.Insights.GetTotalPortfolioValue(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, s.format.Value(value))
	})
}

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show asset counts per class and transaction statistics" }
func (*insightsCmd) Usage() string {
	return `insights
`
}
func (*insightsCmd) SetFlags(*flag.FlagSet) {}

func (*insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		insights, err := s.Insights.GetInsights(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, s.format.Insights(insights))
	})
}

type dashboardCmd struct {
	recent int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show value, assets by class and recent transactions" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-n <count>]
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "n", 5, "Number of recent transactions to show (0 for all)")
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		value, err := s.Insights.GetTotalPortfolioValue(ctx)
		if err != nil {
			return err
		}
		insights, err := s.Insights.GetInsights(ctx)
		if err != nil {
			return err
		}
		entries, err := s.Transactions.ListTransactions(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, s.format.Dashboard(value, insights, entries, c.recent))
	})
}
