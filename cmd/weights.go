package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// weightsCmd holds the flags for the 'weights' subcommand.
type weightsCmd struct {
	analysisFlags
}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "compute inverse-volatility target weights" }
func (*weightsCmd) Usage() string {
	return `rbl weights [-tickers <list>] [-lookback <3m|6m|1y|2y>] [-d <date>] [-u]

  Computes risk-parity target weights for the portfolio: each ticker is
  weighted by the inverse of its return volatility over the lookback window.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) { c.analysisFlags.setFlags(f) }

func (c *weightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _, err := c.weighting(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing weights: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WeightsMarkdown(w))
	return subcommands.ExitSuccess
}
