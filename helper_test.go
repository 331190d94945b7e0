package rebalance

import (
	"time"

	"github.com/etnz/rebalance/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// day is a helper for tests that need dates in a fixed year.
func day(month time.Month, d int) date.Date { return date.New(2025, month, d) }

// priceHistory builds a daily close series starting at 'start' on 'from', one
// observation per return: p[i] = p[i-1] * (1 + returns[i]).
func priceHistory(from date.Date, start float64, returns ...float64) *date.History {
	h := &date.History{}
	h.Append(from, start)
	price := start
	for i, r := range returns {
		price *= 1 + r
		h.Append(from.Add(i+1), price)
	}
	return h
}
