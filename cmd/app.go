// Package cmd implements the CLI application to compute rebalancing guidance.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "market data")
	c.Register(&classesCmd{}, "market data")

	c.Register(&weightsCmd{}, "analysis")
	c.Register(&placeCmd{}, "analysis")
	c.Register(&tradesCmd{}, "analysis")
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data price file (JSONL format)")
var classesFile = flag.String("classes-file", "", "Path to a JSON file overriding the asset class table")

// DecodeMarket reads the app market data file.
func DecodeMarket() (*rebalance.MarketData, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Println("warning, market data file does not exist, starting from an empty one")
		return rebalance.NewMarketData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open market data file %q: %w", *marketFile, err)
	}
	defer f.Close()
	m, err := rebalance.DecodeMarketData(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read market data file %q: %w", *marketFile, err)
	}
	return m, nil
}

// EncodeMarket writes the market data back to the app market data file.
func EncodeMarket(m *rebalance.MarketData) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return fmt.Errorf("cannot create market data file %q: %w", *marketFile, err)
	}
	defer f.Close()
	return rebalance.EncodeMarketData(f, m)
}

// Classifications returns the default asset class table, with the user's
// overrides applied when -classes-file is set.
func Classifications() (rebalance.AssetClassifications, error) {
	classes := rebalance.DefaultClassifications()
	if *classesFile == "" {
		return classes, nil
	}
	f, err := os.Open(*classesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open classes file %q: %w", *classesFile, err)
	}
	defer f.Close()
	overrides, err := rebalance.DecodeClassifications(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read classes file %q: %w", *classesFile, err)
	}
	return classes.Merge(overrides), nil
}

// DecodeHoldingsFile reads current positions from a JSONL holdings file.
func DecodeHoldingsFile(filename string) ([]rebalance.Holding, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file %q: %w", filename, err)
	}
	defer f.Close()
	holdings, err := rebalance.DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings file %q: %w", filename, err)
	}
	return holdings, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. output is not a tty-friendly context).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
