package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"portfoliotracker/internal/models"
	"portfoliotracker/internal/services"
)

// --- transactions ---

type transactionsCmd struct{}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list recorded transactions, most recent first" }
func (*transactionsCmd) Usage() string {
	return `transactions
`
}
func (*transactionsCmd) SetFlags(*flag.FlagSet) {}

func (*transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		entries, err := s.Transactions.ListTransactions(ctx)
		if err != nil {
			return err
		}
		return printReport(os.Stdout, s.format.Transactions(entries))
	})
}

// --- add-transaction ---

type addTransactionCmd struct {
	date     string
	ticker   string
	txType   string
	quantity string
	price    string
}

func (*addTransactionCmd) Name() string     { return "add-transaction" }
func (*addTransactionCmd) Synopsis() string { return "record a buy, sell or dividend" }
func (*addTransactionCmd) Usage() string {
	return `add-transaction -t <ticker> -type <BUY|SELL|DIVIDEND> -q <quantity> -p <price> [-d <date>]

  Records a transaction against a tracked asset. The total cost is
  quantity × price.
`
}

func (c *addTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", time.Now().UTC().Format(time.DateOnly), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Ticker of a tracked asset")
	f.StringVar(&c.txType, "type", "", "BUY, SELL or DIVIDEND")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.price, "p", "", "Price per share")
}

func (c *addTransactionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	ticker := strings.ToUpper(strings.TrimSpace(c.ticker))

	return withSession(ctx, func(s *session) error {
		asset, err := s.Assets.GetAssetByTicker(ctx, ticker)
		if err != nil {
			return fmt.Errorf("%s: %w", ticker, err)
		}
		input.AssetID = asset.ID

		tx, err := s.Transactions.AddTransaction(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s of %s %s for %s (id %d)\n",
			tx.TransactionType, tx.Quantity, asset.Ticker, s.format.Money(tx.TotalCost), tx.ID)
		return nil
	})
}

// parse validates the flags into a TransactionInput without an asset id.
func (c *addTransactionCmd) parse() (services.TransactionInput, error) {
	var in services.TransactionInput

	if strings.TrimSpace(c.ticker) == "" {
		return in, fmt.Errorf("a ticker is required")
	}
	txType, ok := models.ParseTransactionType(c.txType)
	if !ok {
		return in, fmt.Errorf("invalid transaction type %q", c.txType)
	}
	day, err := time.Parse(time.DateOnly, c.date)
	if err != nil {
		return in, fmt.Errorf("invalid date %q, use YYYY-MM-DD", c.date)
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil || !quantity.IsPositive() {
		return in, fmt.Errorf("quantity must be a positive number")
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil || !price.IsPositive() {
		return in, fmt.Errorf("price must be a positive number")
	}

	in.Date = day
	in.Type = txType
	in.Quantity = quantity
	in.PricePerShare = price
	return in, nil
}

// --- delete-transaction ---

type deleteTransactionCmd struct {
	id uint
}

func (*deleteTransactionCmd) Name() string     { return "delete-transaction" }
func (*deleteTransactionCmd) Synopsis() string { return "delete a recorded transaction" }
func (*deleteTransactionCmd) Usage() string {
	return `delete-transaction -id <transaction id>
`
}

func (c *deleteTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.id, "id", 0, "Transaction id")
}

func (c *deleteTransactionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		if err := s.Transactions.DeleteTransaction(ctx, c.id); err != nil {
			return err
		}
		fmt.Printf("Deleted transaction %d\n", c.id)
		return nil
	})
}
