package rebalance

import (
	"sort"

	"github.com/etnz/rebalance/date"
)

// MarketData holds daily closing prices for a set of tickers. Tickers are
// opaque identifiers; the market data does not interpret them.
type MarketData struct {
	prices map[string]*date.History
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{prices: make(map[string]*date.History)}
}

// Has reports whether the ticker is known.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.prices[ticker]
	return ok
}

// Add declares a ticker, with no prices yet. Adding an existing ticker is a
// no-op.
func (m *MarketData) Add(ticker string) {
	if !m.Has(ticker) {
		m.prices[ticker] = &date.History{}
	}
}

// Append records the closing price of a ticker on a day, declaring the
// ticker if needed. An existing price for that day is overwritten.
func (m *MarketData) Append(ticker string, on date.Date, close float64) {
	m.Add(ticker)
	m.prices[ticker].Append(on, close)
}

// Prices returns the price history for a ticker, or nil if unknown.
func (m *MarketData) Prices(ticker string) *date.History { return m.prices[ticker] }

// Tickers returns all known tickers in alphabetical order.
func (m *MarketData) Tickers() []string {
	tickers := make([]string, 0, len(m.prices))
	for t := range m.prices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// Latest returns the most recent close for a ticker.
func (m *MarketData) Latest(ticker string) (on date.Date, close float64, ok bool) {
	h, exists := m.prices[ticker]
	if !exists || h.Len() == 0 {
		return date.Date{}, 0, false
	}
	on, close = h.Latest()
	return on, close, true
}

// LatestPrices returns the most recent close of every ticker as Money, the
// form the rebalance engine consumes. Tickers without prices are omitted.
func (m *MarketData) LatestPrices() map[string]Money {
	prices := make(map[string]Money, len(m.prices))
	for ticker := range m.prices {
		if _, close, ok := m.Latest(ticker); ok {
			prices[ticker] = M(close, "USD")
		}
	}
	return prices
}

// Series returns all price histories keyed by ticker, the form the
// volatility weighter consumes.
func (m *MarketData) Series() map[string]*date.History { return m.prices }
