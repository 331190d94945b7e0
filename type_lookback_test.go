package rebalance

import (
	"testing"
	"time"
)

func TestParseLookback(t *testing.T) {
	testCases := []struct {
		in      string
		want    Lookback
		wantErr bool
	}{
		{"3m", Months3, false},
		{"6mo", Months6, false},
		{" 1Y ", Year1, false},
		{"2y", Years2, false},
		{"12m", Year1, false},
		{"5y", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseLookback(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLookback(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseLookback(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestLookback_Start(t *testing.T) {
	asOf := day(time.June, 30)
	testCases := []struct {
		lookback Lookback
		want     string
	}{
		{Months3, "2025-03-30"},
		{Months6, "2024-12-30"},
		{Year1, "2024-06-30"},
		{Years2, "2023-06-30"},
	}
	for _, tc := range testCases {
		if got := tc.lookback.Start(asOf); got.String() != tc.want {
			t.Errorf("%s.Start(%s) = %s, want %s", tc.lookback, asOf, got, tc.want)
		}
	}
}
