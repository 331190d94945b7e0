package rebalance

import (
	"github.com/etnz/rebalance/date"
)

// ActionPlan gathers the full analysis for one run: risk-parity targets, tax
// placement, and the rebalancing verdict. It is structured data only; the
// renderer package turns it into something presentable.
type ActionPlan struct {
	Date       date.Date
	Weighting  *Weighting
	Accounts   []Account
	Allocation *Allocation
	Rebalance  *Rebalance // nil when no holdings were supplied
	Prices     map[string]Money
	Shortfall  *CapacityShortfallError // nil unless capacity ran out
}

// ShoppingItem is one target position of an account: the dollars to hold in
// a ticker and, when a current price is known, the matching share count.
type ShoppingItem struct {
	Ticker   string
	Class    AssetClass
	Value    Money
	Price    Money
	Shares   Quantity
	HasPrice bool
}

// ShoppingList returns the target positions of one account in placement
// order. Items without a known price carry HasPrice=false and a zero share
// count.
func (p *ActionPlan) ShoppingList(kind AccountKind) []ShoppingItem {
	var items []ShoppingItem
	for _, placement := range p.Allocation.Placements {
		if placement.Account != kind {
			continue
		}
		item := ShoppingItem{
			Ticker: placement.Ticker,
			Class:  placement.Class,
			Value:  placement.Amount,
		}
		if price, ok := p.Prices[placement.Ticker]; ok && price.IsPositive() {
			item.Price = price
			item.Shares = placement.Amount.DivPrice(price)
			item.HasPrice = true
		}
		items = append(items, item)
	}
	return items
}
