package rebalance

import (
	"fmt"
	"sort"
)

// Account is one tax-differentiated account and its investable balance.
type Account struct {
	Kind    AccountKind
	Balance Money
}

// Placement is the dollar amount of one ticker assigned to one account.
type Placement struct {
	Account AccountKind
	Ticker  string
	Class   AssetClass
	Amount  Money
}

// Allocation maps every (account, ticker) pair to its target dollar amount.
// Placements are recorded in waterfall fill order, which is fully determined
// by the tax ranking keys: the result is identical for any input ordering.
type Allocation struct {
	Total      Money // total portfolio value the placement targets
	Placements []Placement
}

// Amount returns the dollars of ticker placed in the account of the given kind.
func (a *Allocation) Amount(kind AccountKind, ticker string) Money {
	total := M(0, a.Total.Currency())
	for _, p := range a.Placements {
		if p.Account == kind && p.Ticker == ticker {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// AccountTotal returns the dollars placed in the account of the given kind.
func (a *Allocation) AccountTotal(kind AccountKind) Money {
	total := M(0, a.Total.Currency())
	for _, p := range a.Placements {
		if p.Account == kind {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// TickerTotal returns the dollars placed for a ticker across all accounts.
func (a *Allocation) TickerTotal(ticker string) Money {
	total := M(0, a.Total.Currency())
	for _, p := range a.Placements {
		if p.Ticker == ticker {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Tickers returns the placed tickers in alphabetical order.
func (a *Allocation) Tickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, p := range a.Placements {
		if !seen[p.Ticker] {
			seen[p.Ticker] = true
			tickers = append(tickers, p.Ticker)
		}
	}
	sort.Strings(tickers)
	return tickers
}

// target is one ticker's remaining dollars to place, ranked for the waterfall.
type target struct {
	ticker    string
	class     AssetClass
	remaining Money
}

// PlaceAssets assigns each ticker's target dollars to accounts using a greedy
// waterfall: tickers are visited from most to least tax-inefficient asset
// class (ties broken alphabetically) and each one fills the most
// tax-advantaged account with remaining capacity before spilling into the
// next.
//
// The total portfolio value is the sum of the account balances, so with
// consistent inputs every dollar finds a home. If capacity still runs out
// the partial allocation is returned together with a CapacityShortfallError
// listing the unplaced remainder per ticker. The waterfall is a deliberate
// heuristic, not an optimizer: it never backtracks.
func PlaceAssets(weights *Weighting, classes AssetClassifications, accounts []Account) (*Allocation, error) {
	seen := make(map[AccountKind]bool)
	for _, acc := range accounts {
		if seen[acc.Kind] {
			return nil, fmt.Errorf("duplicate %s account", acc.Kind)
		}
		seen[acc.Kind] = true
		if acc.Balance.IsNegative() {
			return nil, fmt.Errorf("negative balance %s on %s account", acc.Balance, acc.Kind)
		}
	}

	currency := "USD"
	total := M(0, currency)
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}

	targets := make([]target, 0, len(weights.Assets))
	for _, asset := range weights.Assets {
		targets = append(targets, target{
			ticker:    asset.Ticker,
			class:     classes.Class(asset.Ticker),
			remaining: total.Mul(Q(asset.Weight)),
		})
	}

	return placeTargets(total, targets, accounts)
}

// placeTargets runs the waterfall proper over pre-computed dollar targets.
func placeTargets(total Money, targets []target, accounts []Account) (*Allocation, error) {
	// Rank assets by tax-inefficiency, then ticker. Rank accounts by
	// tax-advantage. Both orders are total, making the fill deterministic.
	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].class != targets[j].class {
			return targets[i].class.MoreTaxInefficientThan(targets[j].class)
		}
		return targets[i].ticker < targets[j].ticker
	})
	ranked := make([]Account, len(accounts))
	copy(ranked, accounts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Kind.MoreTaxAdvantagedThan(ranked[j].Kind)
	})

	remaining := make([]Money, len(ranked))
	for i, acc := range ranked {
		remaining[i] = acc.Balance
	}

	alloc := &Allocation{Total: total}
	var unplaced []UnplacedTarget
	for _, t := range targets {
		for i := range ranked {
			if !t.remaining.IsPositive() {
				break
			}
			if !remaining[i].IsPositive() {
				continue
			}
			amount := t.remaining.Min(remaining[i])
			alloc.Placements = append(alloc.Placements, Placement{
				Account: ranked[i].Kind,
				Ticker:  t.ticker,
				Class:   t.class,
				Amount:  amount,
			})
			remaining[i] = remaining[i].Sub(amount)
			t.remaining = t.remaining.Sub(amount)
		}
		if t.remaining.IsPositive() {
			unplaced = append(unplaced, UnplacedTarget{Ticker: t.ticker, Amount: t.remaining})
		}
	}

	if len(unplaced) > 0 {
		capacity := M(0, total.Currency())
		for _, acc := range accounts {
			capacity = capacity.Add(acc.Balance)
		}
		target := capacity
		for _, u := range unplaced {
			target = target.Add(u.Amount)
		}
		return alloc, &CapacityShortfallError{Target: target, Capacity: capacity, Unplaced: unplaced}
	}
	return alloc, nil
}
