package rebalance

import (
	"fmt"
	"strings"
)

// The analysis pipeline reports four recoverable failure kinds. All carry
// enough structure for the presentation layer to explain them without
// re-running the computation.

// InsufficientDataError reports that no ticker had enough price observations
// to estimate a volatility.
type InsufficientDataError struct {
	Tickers []string // tickers that were rejected, in alphabetical order
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient price data: no usable return series for %s", strings.Join(e.Tickers, ", "))
}

// DegenerateVolatilityError reports that every candidate ticker had a
// zero-variance return series, which would produce infinite weights.
type DegenerateVolatilityError struct {
	Tickers []string
}

func (e *DegenerateVolatilityError) Error() string {
	return fmt.Sprintf("degenerate volatility: flat price series for %s", strings.Join(e.Tickers, ", "))
}

// UnplacedTarget is the portion of a ticker's target dollars that found no
// account capacity.
type UnplacedTarget struct {
	Ticker string
	Amount Money
}

// CapacityShortfallError reports that total account capacity was insufficient
// to place the full target allocation. The returned allocation is still valid
// but short by the listed amounts.
type CapacityShortfallError struct {
	Target   Money // total dollars the weights called for
	Capacity Money // total dollars the accounts could hold
	Unplaced []UnplacedTarget
}

func (e *CapacityShortfallError) Error() string {
	parts := make([]string, 0, len(e.Unplaced))
	for _, u := range e.Unplaced {
		parts = append(parts, fmt.Sprintf("%s %s", u.Ticker, u.Amount))
	}
	return fmt.Sprintf("capacity shortfall: accounts hold %s of a %s target, unplaced: %s",
		e.Capacity, e.Target, strings.Join(parts, ", "))
}

// MissingPriceError reports a ticker that needs a current price to convert
// dollars to shares but has none.
type MissingPriceError struct {
	Ticker string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("missing current price for %q", e.Ticker)
}
