package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
	"github.com/etnz/rebalance/yahoo"
)

// analysisFlags are shared by every command that computes target weights.
type analysisFlags struct {
	tickers  string
	lookback string
	date     string
	update   bool
}

func (a *analysisFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&a.tickers, "tickers", "SPY, TLT, GLD, VNQ, EEM", "Comma separated tickers of the portfolio")
	f.StringVar(&a.lookback, "lookback", "1y", "Volatility lookback window (3m, 6m, 1y, 2y)")
	f.StringVar(&a.date, "d", date.Today().String(), "Analysis date")
	f.BoolVar(&a.update, "u", false, "Fetch latest prices before the analysis")
}

// tickerList returns the cleaned ticker list from the -tickers flag.
func (a *analysisFlags) tickerList() []string {
	var tickers []string
	for _, t := range strings.Split(a.tickers, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// weighting loads market data, optionally refreshing it first, and computes
// the inverse-volatility weighting for the flagged tickers.
func (a *analysisFlags) weighting(ctx context.Context) (*rebalance.Weighting, *rebalance.MarketData, error) {
	asOf, err := date.Parse(a.date)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse analysis date: %w", err)
	}
	lookback, err := rebalance.ParseLookback(a.lookback)
	if err != nil {
		return nil, nil, err
	}
	tickers := a.tickerList()
	if len(tickers) == 0 {
		return nil, nil, fmt.Errorf("no tickers to analyze")
	}

	market, err := DecodeMarket()
	if err != nil {
		return nil, nil, err
	}
	if a.update {
		if err := yahoo.Update(ctx, market, tickers, lookback.Start(asOf), asOf); err != nil {
			return nil, nil, fmt.Errorf("cannot update prices: %w", err)
		}
		if err := yahoo.UpdateIntraday(ctx, market, tickers); err != nil {
			return nil, nil, fmt.Errorf("cannot update intraday prices: %w", err)
		}
		if err := EncodeMarket(market); err != nil {
			return nil, nil, err
		}
	}

	series := make(map[string]*date.History, len(tickers))
	for _, ticker := range tickers {
		h := market.Prices(ticker)
		if h == nil {
			h = &date.History{}
		}
		series[ticker] = h
	}
	w, err := rebalance.ComputeWeights(series, lookback, asOf)
	if err != nil {
		return nil, nil, err
	}
	return w, market, nil
}

// balanceFlags are the account balances shared by placement commands.
type balanceFlags struct {
	taxable     float64
	traditional float64
	roth        float64
}

func (b *balanceFlags) setFlags(f *flag.FlagSet) {
	f.Float64Var(&b.taxable, "taxable", 50000, "Taxable brokerage balance in USD")
	f.Float64Var(&b.traditional, "traditional", 30000, "Traditional IRA / 401k balance in USD")
	f.Float64Var(&b.roth, "roth", 20000, "Roth IRA balance in USD")
}

func (b *balanceFlags) accounts() []rebalance.Account {
	return []rebalance.Account{
		{Kind: rebalance.Taxable, Balance: rebalance.M(b.taxable, "USD")},
		{Kind: rebalance.Traditional, Balance: rebalance.M(b.traditional, "USD")},
		{Kind: rebalance.Roth, Balance: rebalance.M(b.roth, "USD")},
	}
}
