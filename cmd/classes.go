package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// classesCmd holds the flags for the 'classes' subcommand.
type classesCmd struct{}

func (*classesCmd) Name() string     { return "classes" }
func (*classesCmd) Synopsis() string { return "print the asset class table in effect" }
func (*classesCmd) Usage() string {
	return `rbl classes [-classes-file <file>]

  Prints the ticker to asset class table used for tax placement, built-in
  defaults merged with the -classes-file overrides. Unknown tickers are
  treated as equity.
`
}

func (*classesCmd) SetFlags(f *flag.FlagSet) {}

func (c *classesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	classes, err := Classifications()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := new(strings.Builder)
	fmt.Fprintln(md, "| Ticker | Class |")
	fmt.Fprintln(md, "|--------|-------|")
	for _, ticker := range classes.Tickers() {
		fmt.Fprintf(md, "| %s | %s |\n", ticker, classes.Class(ticker))
	}
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
