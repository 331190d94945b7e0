package yahoo

import (
	"context"
	"errors"
	"sync"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds the simultaneous requests against the quote API.
const fetchConcurrency = 4

// Update fetches daily closes for every ticker between from and to and
// appends them to the market data. Fetches run concurrently, one per ticker,
// and are joined before Update returns, so callers see a fully consistent
// collection. The first failing ticker cancels the rest.
func Update(ctx context.Context, m *rebalance.MarketData, tickers []string, from, to date.Date) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	var mu sync.Mutex // MarketData is not safe for concurrent appends
	for _, ticker := range tickers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := Daily(ticker, from, to)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			m.Add(ticker)
			for on, close := range h.Values() {
				m.Append(ticker, on, close)
			}
			return nil
		})
	}
	return g.Wait()
}

// UpdateIntraday appends today's latest traded price for every ticker,
// giving the rebalance engine a current price even while the market is open.
// Every ticker is attempted; failures are joined into a single error and the
// successful tickers keep their fresh quote.
func UpdateIntraday(ctx context.Context, m *rebalance.MarketData, tickers []string) error {
	g := new(errgroup.Group)
	g.SetLimit(fetchConcurrency)

	var mu sync.Mutex
	var errs []error
	for _, ticker := range tickers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			latest, err := Latest(ticker)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			m.Append(ticker, date.Today(), latest)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
