// Package report renders portfolio data as Markdown for the operator CLI.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"portfoliotracker/internal/models"
	"portfoliotracker/internal/services"
)

// Formatter renders amounts in a single display currency.
type Formatter struct {
	currency string
}

// NewFormatter returns a Formatter for the ISO 4217 code currency.
func NewFormatter(currency string) *Formatter {
	return &Formatter{currency: strings.ToUpper(currency)}
}

// Money formats amount with the currency's symbol, grouping and minor units.
// Amounts are rounded half away from zero to the currency's fraction.
func (f *Formatter) Money(amount decimal.Decimal) string {
	// money.New never returns a nil currency, unknown codes get defaults.
	cur := money.New(0, f.currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// AssetClasses renders the asset class table.
func AssetClasses(classes []models.AssetClass) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Asset Classes\n\n")
	fmt.Fprintln(&b, "| ID | Name |")
	fmt.Fprintln(&b, "|---:|:---|")
	for _, c := range classes {
		fmt.Fprintf(&b, "| %d | %s |\n", c.ID, c.Name)
	}
	return b.String()
}

// Assets renders the asset table.
func Assets(assets []services.AssetSummary) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Assets\n\n")
	if len(assets) == 0 {
		fmt.Fprintln(&b, "No assets recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Ticker | Name | Class |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|")
	for _, a := range assets {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", a.ID, a.Ticker, a.Name, a.ClassName)
	}
	return b.String()
}

// Transactions renders the transaction log, in the order given.
func (f *Formatter) Transactions(entries []services.TransactionEntry) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Date | Ticker | Type | Quantity | Price | Total |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|---:|---:|---:|")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			e.ID,
			e.TransactionDate.Format("2006-01-02"),
			e.Ticker,
			e.TransactionType,
			e.Quantity.String(),
			f.Money(e.PricePerShare),
			f.Money(e.TotalCost),
		)
	}
	return b.String()
}

// Value renders the portfolio value line.
func (f *Formatter) Value(value decimal.Decimal) string {
	return fmt.Sprintf("# Portfolio Value\n\n**%s** net invested (buys minus sells)\n", f.Money(value))
}

// Insights renders class counts followed by the transaction aggregates.
func (f *Formatter) Insights(in *services.Insights) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Insights\n\n")

	fmt.Fprint(&b, "## Assets by Class\n\n")
	fmt.Fprintf(&b, "Number of assets: **%d**\n\n", assetCount(in))
	if len(in.AssetsByType) == 0 {
		fmt.Fprintln(&b, "No assets recorded.")
	} else {
		fmt.Fprintln(&b, "| Class | Assets |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, name := range classNames(in) {
			fmt.Fprintf(&b, "| %s | %d |\n", name, in.AssetsByType[name])
		}
	}

	fmt.Fprint(&b, "\n## Transactions\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total investment | %s |\n", f.Money(in.TotalInvestment))
	fmt.Fprintf(&b, "| Average cost per share | %s |\n", f.Money(in.AvgCostPerShare))
	fmt.Fprintf(&b, "| Largest transaction | %s |\n", f.Money(in.MaxTransactionValue))
	fmt.Fprintf(&b, "| Smallest transaction | %s |\n", f.Money(in.MinTransactionValue))
	return b.String()
}

// Dashboard combines the portfolio value, the class breakdown and the most
// recent transactions. entries are expected newest first; limit <= 0 keeps
// them all.
func (f *Formatter) Dashboard(value decimal.Decimal, in *services.Insights, entries []services.TransactionEntry, limit int) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Dashboard\n\n")
	fmt.Fprintln(&b, "| Portfolio value | Assets | Transactions |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %d | %d |\n", f.Money(value), assetCount(in), len(entries))

	fmt.Fprint(&b, "\n## Assets by Class\n\n")
	if len(in.AssetsByType) == 0 {
		fmt.Fprintln(&b, "No assets recorded.")
	} else {
		fmt.Fprintln(&b, "| Class | Assets |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, name := range classNames(in) {
			fmt.Fprintf(&b, "| %s | %d |\n", name, in.AssetsByType[name])
		}
	}

	fmt.Fprint(&b, "\n## Recent Transactions\n\n")
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	fmt.Fprintln(&b, "| Date | Ticker | Type | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			e.TransactionDate.Format("2006-01-02"), e.Ticker, e.TransactionType, f.Money(e.TotalCost))
	}
	return b.String()
}

func assetCount(in *services.Insights) int64 {
	var n int64
	for _, count := range in.AssetsByType {
		n += count
	}
	return n
}

func classNames(in *services.Insights) []string {
	names := make([]string, 0, len(in.AssetsByType))
	for name := range in.AssetsByType {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render styles markdown for a terminal using the named glamour style
// ("dark", "light", "notty", ...).
func Render(markdown, style string) (string, error) {
	out, err := glamour.Render(markdown, style)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
