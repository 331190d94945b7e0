package rebalance

import (
	"sort"
)

// negligibleShares suppresses trades too small to be worth their costs.
const negligibleShares = 1e-6

// Trade adjusts one account's position in one ticker. Positive shares buy,
// negative shares sell.
type Trade struct {
	Account AccountKind
	Ticker  string
	Shares  Quantity
	Amount  Money // signed dollar value of the trade
}

// Rebalance is the outcome of comparing current holdings to the target
// allocation.
//
// When Triggered is false the drift is noise-level and the trade list is
// empty: rebalancing on every wiggle would trade away the volatility premium
// in transaction costs, so the engine only acts past the threshold.
type Rebalance struct {
	Drift     Percent // L1 relative drift over the whole portfolio
	Threshold Percent
	Triggered bool
	Trades    []Trade
}

// pair identifies one account/ticker position.
type pair struct {
	account AccountKind
	ticker  string
}

// Evaluate measures how far current holdings have drifted from the target
// allocation and, when the drift exceeds the threshold, computes the trades
// that close the gap.
//
// Drift is the L1 aggregate: the sum over all account/ticker pairs of the
// absolute dollar gap, divided by total portfolio value. A drift exactly
// equal to the threshold does not trigger.
//
// prices gives the current price per ticker. A pair that needs a price and
// has none, including a fresh buy of an unheld ticker, yields a
// MissingPriceError. Executing every returned trade brings each pair to its
// exact target value, so re-evaluating afterwards is a no-op.
func Evaluate(alloc *Allocation, holdings []Holding, prices map[string]Money, threshold Percent) (*Rebalance, error) {
	currency := alloc.Total.Currency()
	current := make(map[pair]Money)
	targets := make(map[pair]Money)

	for _, h := range holdings {
		price, ok := prices[h.Ticker]
		if !ok || !price.IsPositive() {
			return nil, &MissingPriceError{Ticker: h.Ticker}
		}
		k := pair{h.Account, h.Ticker}
		v, exists := current[k]
		if !exists {
			v = M(0, currency)
		}
		current[k] = v.Add(price.Mul(h.Shares))
	}
	for _, p := range alloc.Placements {
		k := pair{p.Account, p.Ticker}
		v, exists := targets[k]
		if !exists {
			v = M(0, currency)
		}
		targets[k] = v.Add(p.Amount)
	}

	// Walk the union of pairs in (account rank, ticker) order for a
	// deterministic trade list.
	union := make(map[pair]bool)
	for k := range current {
		union[k] = true
	}
	for k := range targets {
		union[k] = true
	}
	pairs := make([]pair, 0, len(union))
	for k := range union {
		pairs = append(pairs, k)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].account != pairs[j].account {
			return pairs[i].account.MoreTaxAdvantagedThan(pairs[j].account)
		}
		return pairs[i].ticker < pairs[j].ticker
	})

	gap := M(0, currency)
	for _, k := range pairs {
		cv, tv := valueOr(current, k, currency), valueOr(targets, k, currency)
		gap = gap.Add(tv.Sub(cv).Abs())
	}

	result := &Rebalance{Threshold: threshold}
	if alloc.Total.IsPositive() {
		result.Drift = Percent(100 * gap.AsFloat() / alloc.Total.AsFloat())
	}
	if result.Drift <= threshold {
		return result, nil
	}
	result.Triggered = true

	epsilon := Q(negligibleShares)
	for _, k := range pairs {
		delta := valueOr(targets, k, currency).Sub(valueOr(current, k, currency))
		if delta.IsZero() {
			continue
		}
		price, ok := prices[k.ticker]
		if !ok || !price.IsPositive() {
			return nil, &MissingPriceError{Ticker: k.ticker}
		}
		shares := delta.DivPrice(price)
		if shares.Abs().LessThan(epsilon) {
			continue
		}
		result.Trades = append(result.Trades, Trade{
			Account: k.account,
			Ticker:  k.ticker,
			Shares:  shares,
			Amount:  delta,
		})
	}
	return result, nil
}

func valueOr(values map[pair]Money, k pair, currency string) Money {
	if v, ok := values[k]; ok {
		return v
	}
	return M(0, currency)
}
