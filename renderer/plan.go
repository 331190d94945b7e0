// Package renderer turns the structured reports of the rebalance package
// into markdown, ready to be printed raw or through a terminal renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// WeightsMarkdown renders the risk-parity target weights table.
func WeightsMarkdown(w *rebalance.Weighting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Risk Parity Targets (Inverse Volatility)\n\n")
	fmt.Fprintf(&b, "As of %s, %s lookback.\n\n", w.AsOf, w.Lookback)
	fmt.Fprintln(&b, "| Ticker | Volatility (Ann.) | Target Weight |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, a := range w.Assets {
		fmt.Fprintf(&b, "| %s | %.2f%% | %.2f%% |\n", a.Ticker, 100*a.Volatility, 100*a.Weight)
	}
	return b.String()
}

// AllocationMarkdown renders the per-account placement as a pivot table,
// tickers as rows and accounts as columns.
func AllocationMarkdown(a *rebalance.Allocation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tax-Efficient Account Placement\n\n")
	fmt.Fprintf(&b, "Total portfolio value: %s.\n\n", a.Total)

	fmt.Fprint(&b, "| Ticker |")
	for _, kind := range rebalance.AccountKinds {
		fmt.Fprintf(&b, " %s |", kind.Label())
	}
	fmt.Fprintln(&b, " Total |")
	fmt.Fprint(&b, "|:---|")
	for range rebalance.AccountKinds {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b, "---:|")

	for _, ticker := range a.Tickers() {
		fmt.Fprintf(&b, "| %s |", ticker)
		for _, kind := range rebalance.AccountKinds {
			fmt.Fprintf(&b, " %s |", a.Amount(kind, ticker))
		}
		fmt.Fprintf(&b, " %s |\n", a.TickerTotal(ticker))
	}
	return b.String()
}

// TradesMarkdown renders the rebalancing verdict and, when triggered, the
// trade list.
func TradesMarkdown(r *rebalance.Rebalance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing\n\n")
	fmt.Fprintf(&b, "Portfolio drift is %s against a %s band.\n\n", r.Drift, r.Threshold)
	if !r.Triggered {
		fmt.Fprintln(&b, "No trades: the drift is within the band, rebalancing now would trade away the volatility premium in costs.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Account | Ticker | Action | Shares | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, t := range r.Trades {
		action := "buy"
		if t.Shares.IsNegative() {
			action = "sell"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			t.Account.Label(), t.Ticker, action, t.Shares.Abs(), t.Amount.Abs())
	}
	return b.String()
}

// ShoppingListMarkdown renders the target positions of every account, the
// "what should this account hold" view.
func ShoppingListMarkdown(p *rebalance.ActionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Target Positions by Account\n\n")
	for _, kind := range rebalance.AccountKinds {
		items := p.ShoppingList(kind)
		fmt.Fprintf(&b, "## %s\n\n", kind.Label())
		if len(items) == 0 {
			fmt.Fprintln(&b, "No assets allocated to this account.")
			fmt.Fprintln(&b)
			continue
		}
		fmt.Fprintln(&b, "| Ticker | Class | Value | Price | Shares to Own |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, item := range items {
			if item.HasPrice {
				fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f |\n",
					item.Ticker, item.Class, item.Value, item.Price, item.Shares.AsFloat())
			} else {
				fmt.Fprintf(&b, "| %s | %s | %s | n/a | n/a |\n", item.Ticker, item.Class, item.Value)
			}
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// ShortfallMarkdown renders the capacity shortfall warning.
func ShortfallMarkdown(e *rebalance.CapacityShortfallError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Capacity Shortfall\n\n")
	fmt.Fprintf(&b, "Accounts hold %s of a %s target. Unplaced amounts:\n\n", e.Capacity, e.Target)
	fmt.Fprintln(&b, "| Ticker | Unplaced |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, u := range e.Unplaced {
		fmt.Fprintf(&b, "| %s | %s |\n", u.Ticker, u.Amount)
	}
	return b.String()
}

// ActionPlanMarkdown renders the full analysis: weights, placement, target
// positions, and the rebalancing verdict when holdings were supplied.
func ActionPlanMarkdown(p *rebalance.ActionPlan) string {
	sections := []string{WeightsMarkdown(p.Weighting), AllocationMarkdown(p.Allocation)}
	if p.Shortfall != nil {
		sections = append(sections, ShortfallMarkdown(p.Shortfall))
	}
	sections = append(sections, ShoppingListMarkdown(p))
	if p.Rebalance != nil {
		sections = append(sections, TradesMarkdown(p.Rebalance))
	}
	return strings.Join(sections, "\n")
}
