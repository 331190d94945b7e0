package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance/agent"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	analysisFlags
	balanceFlags
	band     float64
	holdings string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "explain the action plan with an AI advisor" }
func (*assistCmd) Usage() string {
	return `rbl assist [analyze flags] [question...]

  Computes the full action plan and asks a Gemini model to explain it in
  plain language. Extra arguments form the question; without one the advisor
  simply walks through the plan. Requires the GEMINI_API_KEY environment
  variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.setFlags(f)
	c.balanceFlags.setFlags(f)
	f.Float64Var(&c.band, "band", 5, "Rebalance threshold in percent, trades trigger above it")
	f.StringVar(&c.holdings, "holdings", "", "Path to a JSONL file with current positions")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := buildPlan(ctx, &c.analysisFlags, &c.balanceFlags, c.band, c.holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}
	advisor, err := agent.NewAdvisor(ctx, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	question := strings.Join(f.Args(), " ")
	answer, err := advisor.Explain(ctx, renderer.ActionPlanMarkdown(plan), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error from advisor: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
