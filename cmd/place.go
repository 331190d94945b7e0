package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// placeCmd holds the flags for the 'place' subcommand.
type placeCmd struct {
	analysisFlags
	balanceFlags
}

func (*placeCmd) Name() string     { return "place" }
func (*placeCmd) Synopsis() string { return "place target weights across tax-differentiated accounts" }
func (*placeCmd) Usage() string {
	return `rbl place [-tickers <list>] [-lookback <3m|6m|1y|2y>] [-u]
          [-taxable <$>] [-traditional <$>] [-roth <$>]

  Computes target weights and distributes each ticker's target dollars
  across the accounts, sheltering the most tax-inefficient asset classes in
  the most tax-advantaged accounts first.
`
}

func (c *placeCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.setFlags(f)
	c.balanceFlags.setFlags(f)
}

func (c *placeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := buildPlan(ctx, &c.analysisFlags, &c.balanceFlags, 0, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if plan.Shortfall != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", plan.Shortfall)
	}
	printMarkdown(renderer.AllocationMarkdown(plan.Allocation) + "\n" + renderer.ShoppingListMarkdown(plan))
	return subcommands.ExitSuccess
}
