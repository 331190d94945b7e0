package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// AssetClassifications maps tickers to their asset class for tax-location
// ranking. Tickers absent from the table default to Equity, the least
// sheltered class, so an unclassified ticker is never given priority over a
// known tax-inefficient one.
type AssetClassifications map[string]AssetClass

// DefaultClassifications returns the classification table shipped with the
// tool, covering the usual broad-market ETFs.
func DefaultClassifications() AssetClassifications {
	return AssetClassifications{
		// Bonds: interest taxed as ordinary income.
		"TLT": Bond, "IEF": Bond, "BND": Bond, "AGG": Bond,
		// Commodities: collectibles tax treatment or K-1s.
		"GLD": Commodity, "DBC": Commodity, "IAU": Commodity,
		// REITs: mostly unqualified dividends.
		"VNQ": REIT, "SCHH": REIT,
		// Equities: capital gains and qualified dividends.
		"SPY": Equity, "VTI": Equity, "QQQ": Equity, "EEM": Equity, "VEA": Equity,
	}
}

// Class returns the classification of a ticker, defaulting to Equity.
func (c AssetClassifications) Class(ticker string) AssetClass {
	if class, ok := c[ticker]; ok {
		return class
	}
	return Equity
}

// Tickers returns all classified tickers in alphabetical order.
func (c AssetClassifications) Tickers() []string {
	tickers := make([]string, 0, len(c))
	for t := range c {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// Merge returns a copy of c with the entries of o applied on top.
func (c AssetClassifications) Merge(o AssetClassifications) AssetClassifications {
	merged := make(AssetClassifications, len(c)+len(o))
	for t, class := range c {
		merged[t] = class
	}
	for t, class := range o {
		merged[t] = class
	}
	return merged
}

// DecodeClassifications reads a user-supplied classification table from a
// JSON object mapping tickers to class names:
//
//	{"TLT": "bond", "GLD": "commodity", "MYFUND": "reit"}
func DecodeClassifications(r io.Reader) (AssetClassifications, error) {
	var c AssetClassifications
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("cannot read classification table: %w", err)
	}
	return c, nil
}
