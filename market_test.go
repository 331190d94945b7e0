package rebalance

import (
	"testing"
	"time"
)

func TestMarketData_Append(t *testing.T) {
	m := NewMarketData()
	m.Append("SPY", day(time.June, 2), 644.0)
	m.Append("SPY", day(time.June, 1), 643.0)
	m.Append("SPY", day(time.June, 2), 645.0) // overwrite

	if !m.Has("SPY") {
		t.Fatalf("Has(SPY) = false after Append")
	}
	on, close, ok := m.Latest("SPY")
	if !ok {
		t.Fatalf("Latest(SPY) not found")
	}
	if on != day(time.June, 2) || close != 645.0 {
		t.Errorf("Latest(SPY) = %s %v, want %s 645", on, close, day(time.June, 2))
	}
	if got, _ := m.Prices("SPY").Get(day(time.June, 1)); got != 643.0 {
		t.Errorf("Get(June 1) = %v, want 643", got)
	}
}

func TestMarketData_Tickers(t *testing.T) {
	m := NewMarketData()
	m.Append("TLT", day(time.June, 1), 86.0)
	m.Append("GLD", day(time.June, 1), 310.0)
	m.Add("SPY")

	got := m.Tickers()
	want := []string{"GLD", "SPY", "TLT"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMarketData_LatestPrices(t *testing.T) {
	m := NewMarketData()
	m.Append("TLT", day(time.June, 1), 86.0)
	m.Append("TLT", day(time.June, 5), 87.5)
	m.Add("EMPTY")

	prices := m.LatestPrices()
	if got, ok := prices["TLT"]; !ok || !got.Equal(USD(87.5)) {
		t.Errorf("LatestPrices()[TLT] = %s, want %s", got, USD(87.5))
	}
	if _, ok := prices["EMPTY"]; ok {
		t.Errorf("LatestPrices() contains a ticker with no prices")
	}
}
