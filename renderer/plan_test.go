package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func usd(v float64) rebalance.Money { return rebalance.M(v, "USD") }

func samplePlan() *rebalance.ActionPlan {
	return &rebalance.ActionPlan{
		Date: date.New(2025, time.June, 30),
		Weighting: &rebalance.Weighting{
			AsOf:     date.New(2025, time.June, 30),
			Lookback: rebalance.Year1,
			Assets: []rebalance.WeightedAsset{
				{Ticker: "TLT", Observations: 250, Volatility: 0.10, Weight: 0.6},
				{Ticker: "SPY", Observations: 250, Volatility: 0.15, Weight: 0.4},
			},
		},
		Allocation: &rebalance.Allocation{
			Total: usd(100000),
			Placements: []rebalance.Placement{
				{Account: rebalance.Roth, Ticker: "TLT", Class: rebalance.Bond, Amount: usd(20000)},
				{Account: rebalance.Traditional, Ticker: "TLT", Class: rebalance.Bond, Amount: usd(30000)},
				{Account: rebalance.Taxable, Ticker: "TLT", Class: rebalance.Bond, Amount: usd(10000)},
				{Account: rebalance.Taxable, Ticker: "SPY", Class: rebalance.Equity, Amount: usd(40000)},
			},
		},
		Prices: map[string]rebalance.Money{"TLT": usd(100), "SPY": usd(400)},
	}
}

// headings parses markdown and returns the text of every heading, depth first.
func headings(t *testing.T, md string) []string {
	t.Helper()
	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(source))
			}
			out = append(out, b.String())
		}
		return ast.WalkContinue, nil
	})
	return out
}

func TestWeightsMarkdown(t *testing.T) {
	md := WeightsMarkdown(samplePlan().Weighting)

	got := headings(t, md)
	if len(got) != 1 || got[0] != "Risk Parity Targets (Inverse Volatility)" {
		t.Errorf("headings = %v, want the weights title", got)
	}
	if !strings.Contains(md, "| TLT | 10.00% | 60.00% |") {
		t.Errorf("WeightsMarkdown() missing the TLT row:\n%s", md)
	}
	if !strings.Contains(md, "1y lookback") {
		t.Errorf("WeightsMarkdown() missing the lookback:\n%s", md)
	}
}

func TestAllocationMarkdown(t *testing.T) {
	md := AllocationMarkdown(samplePlan().Allocation)

	// one row per ticker, one column per account kind plus the total.
	if !strings.Contains(md, "| TLT | $20,000.00 | $30,000.00 | $10,000.00 | $60,000.00 |") {
		t.Errorf("AllocationMarkdown() missing the TLT pivot row:\n%s", md)
	}
	if !strings.Contains(md, "| SPY | $0.00 | $0.00 | $40,000.00 | $40,000.00 |") {
		t.Errorf("AllocationMarkdown() missing the SPY pivot row:\n%s", md)
	}
}

func TestTradesMarkdown(t *testing.T) {
	quiet := &rebalance.Rebalance{Drift: rebalance.Percent(2.5), Threshold: rebalance.Percent(5)}
	md := TradesMarkdown(quiet)
	if !strings.Contains(md, "No trades") {
		t.Errorf("TradesMarkdown(untriggered) should explain the no-op:\n%s", md)
	}

	triggered := &rebalance.Rebalance{
		Drift:     rebalance.Percent(8),
		Threshold: rebalance.Percent(5),
		Triggered: true,
		Trades: []rebalance.Trade{
			{Account: rebalance.Roth, Ticker: "TLT", Shares: rebalance.Q(-25), Amount: usd(-2500)},
			{Account: rebalance.Taxable, Ticker: "SPY", Shares: rebalance.Q(6.25), Amount: usd(2500)},
		},
	}
	md = TradesMarkdown(triggered)
	if !strings.Contains(md, "| Roth IRA | TLT | sell | 25 | $2,500.00 |") {
		t.Errorf("TradesMarkdown() missing the sell row:\n%s", md)
	}
	if !strings.Contains(md, "| Taxable Brokerage | SPY | buy | 6.25 | $2,500.00 |") {
		t.Errorf("TradesMarkdown() missing the buy row:\n%s", md)
	}
}

func TestShoppingListMarkdown(t *testing.T) {
	md := ShoppingListMarkdown(samplePlan())

	got := headings(t, md)
	want := []string{"Target Positions by Account", "Roth IRA", "Traditional IRA / 401k", "Taxable Brokerage"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headings[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !strings.Contains(md, "| TLT | bond | $20,000.00 | $100.00 | 200.00 |") {
		t.Errorf("ShoppingListMarkdown() missing the roth TLT row:\n%s", md)
	}
}

func TestActionPlanMarkdown(t *testing.T) {
	plan := samplePlan()
	plan.Rebalance = &rebalance.Rebalance{Drift: rebalance.Percent(1), Threshold: rebalance.Percent(5)}
	plan.Shortfall = &rebalance.CapacityShortfallError{
		Target:   usd(110000),
		Capacity: usd(100000),
		Unplaced: []rebalance.UnplacedTarget{{Ticker: "SPY", Amount: usd(10000)}},
	}

	got := headings(t, ActionPlanMarkdown(plan))
	wantOrder := []string{
		"Risk Parity Targets (Inverse Volatility)",
		"Tax-Efficient Account Placement",
		"Capacity Shortfall",
		"Target Positions by Account",
	}
	i := 0
	for _, h := range got {
		if i < len(wantOrder) && h == wantOrder[i] {
			i++
		}
	}
	if i != len(wantOrder) {
		t.Errorf("section order = %v, want subsequence %v", got, wantOrder)
	}
	if got[len(got)-1] != "Rebalancing" {
		t.Errorf("last section = %q, want the rebalancing verdict", got[len(got)-1])
	}
}
