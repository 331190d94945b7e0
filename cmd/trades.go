package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	analysisFlags
	balanceFlags
	band     float64
	holdings string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "compute the buy/sell list against current holdings" }
func (*tradesCmd) Usage() string {
	return `rbl trades -holdings <file> [-band <percent>] [-tickers <list>]
           [-taxable <$>] [-traditional <$>] [-roth <$>] [-u]

  Measures how far current holdings drifted from the target allocation and
  prints the trades that close the gap. No trades are printed while the
  drift stays within the band.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.setFlags(f)
	c.balanceFlags.setFlags(f)
	f.Float64Var(&c.band, "band", 5, "Rebalance threshold in percent, trades trigger above it")
	f.StringVar(&c.holdings, "holdings", "", "Path to a JSONL file with current positions")
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holdings == "" {
		fmt.Fprintln(os.Stderr, "Error: -holdings is required")
		return subcommands.ExitUsageError
	}
	plan, err := buildPlan(ctx, &c.analysisFlags, &c.balanceFlags, c.band, c.holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if plan.Shortfall != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", plan.Shortfall)
	}
	printMarkdown(renderer.TradesMarkdown(plan.Rebalance))
	return subcommands.ExitSuccess
}
