package rebalance

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeMarketData(t *testing.T) {
	jsonl := `{"on":"2025-06-02","SPY":644.05,"TLT":86.12}

{"on":"2025-06-03","SPY":645.30}
`
	m, err := DecodeMarketData(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeMarketData() error = %v", err)
	}
	if got, _ := m.Prices("SPY").Get(day(time.June, 2)); got != 644.05 {
		t.Errorf("SPY on June 2 = %v, want 644.05", got)
	}
	if got, _ := m.Prices("TLT").Get(day(time.June, 2)); got != 86.12 {
		t.Errorf("TLT on June 2 = %v, want 86.12", got)
	}
	if _, ok := m.Prices("TLT").Get(day(time.June, 3)); ok {
		t.Errorf("TLT has a close on June 3, want a hole")
	}
}

func TestDecodeMarketData_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		jsonl string
	}{
		{"not json", `nope`},
		{"missing on", `{"SPY":644.05}`},
		{"on not a string", `{"on":20250602,"SPY":644.05}`},
		{"on not a date", `{"on":"whenever","SPY":644.05}`},
		{"price not a number", `{"on":"2025-06-02","SPY":"expensive"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeMarketData(strings.NewReader(tc.jsonl)); err == nil {
				t.Errorf("DecodeMarketData(%q) accepted invalid input", tc.jsonl)
			}
		})
	}
}

func TestEncodeMarketData(t *testing.T) {
	m := NewMarketData()
	m.Append("TLT", day(time.June, 3), 86.5)
	m.Append("SPY", day(time.June, 2), 644.05)
	m.Append("TLT", day(time.June, 2), 86.12)

	var b strings.Builder
	if err := EncodeMarketData(&b, m); err != nil {
		t.Fatalf("EncodeMarketData() error = %v", err)
	}
	// days in chronological order, tickers in alphabetical order.
	want := `{"on":"2025-06-02","SPY":644.05,"TLT":86.12}
{"on":"2025-06-03","TLT":86.5}
`
	if b.String() != want {
		t.Errorf("EncodeMarketData() = %q, want %q", b.String(), want)
	}

	// the encoded form reads back to the same market data.
	back, err := DecodeMarketData(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeMarketData(encoded) error = %v", err)
	}
	for _, ticker := range m.Tickers() {
		for on, price := range m.Prices(ticker).Values() {
			if got, ok := back.Prices(ticker).Get(on); !ok || got != price {
				t.Errorf("round trip lost %s %s = %v", ticker, on, price)
			}
		}
	}
}
