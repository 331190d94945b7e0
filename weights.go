package rebalance

import (
	"math"
	"sort"

	"github.com/etnz/rebalance/date"
	"gonum.org/v1/gonum/stat"
)

// tradingDaysPerYear annualizes the daily return volatility for display.
const tradingDaysPerYear = 252

// WeightedAsset is one ticker's share of the risk-parity target.
type WeightedAsset struct {
	Ticker       string
	Observations int     // price observations in the lookback window
	Volatility   float64 // annualized standard deviation of daily returns
	Weight       float64 // fraction of the portfolio, in [0,1]
}

// Weighting holds the inverse-volatility target weights of a set of tickers.
// Weights sum to 1.0 and are sorted by descending weight, ties broken by
// ticker for determinism.
type Weighting struct {
	AsOf     date.Date
	Lookback Lookback
	Assets   []WeightedAsset
}

// Weight returns the target weight for a ticker, and whether it is part of
// the weighting.
func (w *Weighting) Weight(ticker string) (float64, bool) {
	for _, a := range w.Assets {
		if a.Ticker == ticker {
			return a.Weight, true
		}
	}
	return 0, false
}

// Tickers returns the weighted tickers in alphabetical order.
func (w *Weighting) Tickers() []string {
	tickers := make([]string, 0, len(w.Assets))
	for _, a := range w.Assets {
		tickers = append(tickers, a.Ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// ComputeWeights derives inverse-volatility target weights from daily price
// histories.
//
// For each ticker the price series is restricted to the lookback window
// ending on asOf, turned into a daily return series r[i] = p[i]/p[i-1] - 1,
// and summarized by its sample standard deviation. The weight of a ticker is
// 1/sigma normalized over all tickers.
//
// Tickers without enough observations to yield a defined sample deviation
// are excluded. A flat series (sigma = 0) is excluded too rather than given
// an infinite weight. A single surviving ticker gets weight 1.0; if none
// survive, ComputeWeights returns an InsufficientDataError or, when every
// candidate with enough data was flat, a DegenerateVolatilityError.
func ComputeWeights(series map[string]*date.History, lookback Lookback, asOf date.Date) (*Weighting, error) {
	tickers := make([]string, 0, len(series))
	for t := range series {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	from := lookback.Start(asOf)
	w := &Weighting{AsOf: asOf, Lookback: lookback}
	var rejected, flat []string
	var invSum float64

	for _, ticker := range tickers {
		window := series[ticker].Window(from, asOf)
		returns := dailyReturns(window)
		// sample deviation (n-1) is undefined below two returns.
		if len(returns) < 2 {
			rejected = append(rejected, ticker)
			continue
		}
		sigma := stat.StdDev(returns, nil)
		if sigma == 0 {
			flat = append(flat, ticker)
			continue
		}
		sigma *= math.Sqrt(tradingDaysPerYear)
		w.Assets = append(w.Assets, WeightedAsset{
			Ticker:       ticker,
			Observations: window.Len(),
			Volatility:   sigma,
			Weight:       1 / sigma,
		})
		invSum += 1 / sigma
	}

	if len(w.Assets) == 0 {
		if len(flat) > 0 {
			return nil, &DegenerateVolatilityError{Tickers: flat}
		}
		return nil, &InsufficientDataError{Tickers: rejected}
	}

	for i := range w.Assets {
		w.Assets[i].Weight /= invSum
	}
	sort.Slice(w.Assets, func(i, j int) bool {
		if w.Assets[i].Weight != w.Assets[j].Weight {
			return w.Assets[i].Weight > w.Assets[j].Weight
		}
		return w.Assets[i].Ticker < w.Assets[j].Ticker
	})
	return w, nil
}

// dailyReturns converts consecutive closing prices into periodic returns.
func dailyReturns(h *date.History) []float64 {
	if h.Len() < 2 {
		return nil
	}
	returns := make([]float64, 0, h.Len()-1)
	prev := math.NaN()
	for _, price := range h.Values() {
		if !math.IsNaN(prev) {
			returns = append(returns, price/prev-1)
		}
		prev = price
	}
	return returns
}
