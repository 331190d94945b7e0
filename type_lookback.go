package rebalance

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance/date"
)

// Lookback selects the trailing window of price history used to estimate
// volatility.
type Lookback int

const (
	Months3 Lookback = iota
	Months6
	Year1
	Years2
)

// Months returns the window length in calendar months.
func (l Lookback) Months() int {
	switch l {
	case Months3:
		return 3
	case Months6:
		return 6
	case Year1:
		return 12
	case Years2:
		return 24
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// Start returns the first day of the lookback window ending on asOf.
func (l Lookback) Start(asOf date.Date) date.Date { return asOf.AddMonths(-l.Months()) }

func (l Lookback) String() string {
	switch l {
	case Months3:
		return "3m"
	case Months6:
		return "6m"
	case Year1:
		return "1y"
	case Years2:
		return "2y"
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// ParseLookback parses a lookback selector such as "3m", "6mo" or "1y".
func ParseLookback(s string) (Lookback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3m", "3mo":
		return Months3, nil
	case "6m", "6mo":
		return Months6, nil
	case "1y", "12m", "12mo":
		return Year1, nil
	case "2y", "24m", "24mo":
		return Years2, nil
	default:
		return Year1, fmt.Errorf("unknown lookback %q (want 3m, 6m, 1y or 2y)", s)
	}
}
