package rebalance

import (
	"strings"
	"testing"
)

func TestClassifications_Class(t *testing.T) {
	classes := DefaultClassifications()
	testCases := []struct {
		ticker string
		want   AssetClass
	}{
		{"TLT", Bond},
		{"GLD", Commodity},
		{"VNQ", REIT},
		{"SPY", Equity},
		{"ZZZ", Equity}, // unknown tickers default to equity
	}
	for _, tc := range testCases {
		if got := classes.Class(tc.ticker); got != tc.want {
			t.Errorf("Class(%s) = %s, want %s", tc.ticker, got, tc.want)
		}
	}
}

func TestClassifications_Merge(t *testing.T) {
	overrides := AssetClassifications{"SPY": REIT, "MYFUND": Bond}
	merged := DefaultClassifications().Merge(overrides)

	if got := merged.Class("SPY"); got != REIT {
		t.Errorf("Class(SPY) = %s, want the reit override", got)
	}
	if got := merged.Class("MYFUND"); got != Bond {
		t.Errorf("Class(MYFUND) = %s, want bond", got)
	}
	if got := merged.Class("TLT"); got != Bond {
		t.Errorf("Class(TLT) = %s, want the default kept", got)
	}
	// the receiver is untouched.
	if got := DefaultClassifications().Class("SPY"); got != Equity {
		t.Errorf("Merge modified the default table")
	}
}

func TestDecodeClassifications(t *testing.T) {
	classes, err := DecodeClassifications(strings.NewReader(`{"TLT":"bond","MYFUND":"reit"}`))
	if err != nil {
		t.Fatalf("DecodeClassifications() error = %v", err)
	}
	if got := classes.Class("MYFUND"); got != REIT {
		t.Errorf("Class(MYFUND) = %s, want reit", got)
	}
	if _, err := DecodeClassifications(strings.NewReader(`{"TLT":"junk"}`)); err == nil {
		t.Errorf("DecodeClassifications() accepted an unknown class name")
	}
}

func TestAssetClass_Ranking(t *testing.T) {
	order := []AssetClass{Bond, Commodity, REIT, Equity}
	for i := 0; i < len(order)-1; i++ {
		if !order[i].MoreTaxInefficientThan(order[i+1]) {
			t.Errorf("%s should rank as more tax-inefficient than %s", order[i], order[i+1])
		}
		if order[i+1].MoreTaxInefficientThan(order[i]) {
			t.Errorf("%s should not outrank %s", order[i+1], order[i])
		}
	}
}

func TestAccountKind_Ranking(t *testing.T) {
	order := []AccountKind{Roth, Traditional, Taxable}
	for i := 0; i < len(order)-1; i++ {
		if !order[i].MoreTaxAdvantagedThan(order[i+1]) {
			t.Errorf("%s should rank as more tax-advantaged than %s", order[i], order[i+1])
		}
	}
}
