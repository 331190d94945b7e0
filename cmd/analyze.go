package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	analysisFlags
	balanceFlags
	band     float64
	holdings string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compute the full rebalancing action plan" }
func (*analyzeCmd) Usage() string {
	return `rbl analyze [-tickers <list>] [-lookback <3m|6m|1y|2y>] [-u]
            [-taxable <$>] [-traditional <$>] [-roth <$>]
            [-holdings <file>] [-band <percent>]

  Runs the full pipeline: risk-parity target weights, tax-efficient account
  placement, and, when a holdings file is given, the rebalancing trade list.
  Trades are suppressed while the portfolio drift stays within the band.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.setFlags(f)
	c.balanceFlags.setFlags(f)
	f.Float64Var(&c.band, "band", 5, "Rebalance threshold in percent, trades trigger above it")
	f.StringVar(&c.holdings, "holdings", "", "Path to a JSONL file with current positions")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := buildPlan(ctx, &c.analysisFlags, &c.balanceFlags, c.band, c.holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if plan.Shortfall != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", plan.Shortfall)
	}
	printMarkdown(renderer.ActionPlanMarkdown(plan))
	return subcommands.ExitSuccess
}

// buildPlan runs the analysis pipeline shared by 'analyze' and 'assist'.
func buildPlan(ctx context.Context, af *analysisFlags, bf *balanceFlags, band float64, holdingsFile string) (*rebalance.ActionPlan, error) {
	w, market, err := af.weighting(ctx)
	if err != nil {
		return nil, err
	}

	classes, err := Classifications()
	if err != nil {
		return nil, err
	}

	alloc, err := rebalance.PlaceAssets(w, classes, bf.accounts())
	var shortfall *rebalance.CapacityShortfallError
	if errors.As(err, &shortfall) {
		// the partial allocation is still worth reporting, the shortfall is
		// surfaced in the plan.
		err = nil
	}
	if err != nil {
		return nil, err
	}

	plan := &rebalance.ActionPlan{
		Date:       w.AsOf,
		Weighting:  w,
		Accounts:   bf.accounts(),
		Allocation: alloc,
		Prices:     market.LatestPrices(),
		Shortfall:  shortfall,
	}

	if holdingsFile != "" {
		holdings, err := DecodeHoldingsFile(holdingsFile)
		if err != nil {
			return nil, err
		}
		result, err := rebalance.Evaluate(alloc, holdings, plan.Prices, rebalance.Percent(band))
		if err != nil {
			return nil, err
		}
		plan.Rebalance = result
	}
	return plan, nil
}
