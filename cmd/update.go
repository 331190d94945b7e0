package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
	"github.com/etnz/rebalance/yahoo"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	tickers  string
	lookback string
	date     string
	intraday bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch daily close prices into the market data file" }
func (*updateCmd) Usage() string {
	return `rbl update [-tickers <list>] [-lookback <3m|6m|1y|2y>] [-d <date>] [-intraday]

  Downloads daily closes for the portfolio tickers over the lookback window
  and merges them into the market data file. With -intraday, the latest quote
  is also recorded under today's date.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "tickers", "SPY, TLT, GLD, VNQ, EEM", "Comma separated tickers to fetch")
	f.StringVar(&c.lookback, "lookback", "1y", "History window to fetch (3m, 6m, 1y, 2y)")
	f.StringVar(&c.date, "d", date.Today().String(), "Last day of the window")
	f.BoolVar(&c.intraday, "intraday", false, "Also record the latest intraday quote as today's close")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse date: %v\n", err)
		return subcommands.ExitUsageError
	}
	lookback, err := rebalance.ParseLookback(c.lookback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var tickers []string
	for _, t := range strings.Split(c.tickers, ",") {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			tickers = append(tickers, t)
		}
	}
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no tickers to update")
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := yahoo.Update(ctx, market, tickers, lookback.Start(asOf), asOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.intraday {
		if err := yahoo.UpdateIntraday(ctx, market, tickers); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating intraday prices: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := EncodeMarket(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, ticker := range tickers {
		on, close, ok := market.Latest(ticker)
		if !ok {
			fmt.Printf("%-6s no data\n", ticker)
			continue
		}
		fmt.Printf("%-6s %s %.2f\n", ticker, on, close)
	}
	return subcommands.ExitSuccess
}
