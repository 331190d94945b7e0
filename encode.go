package rebalance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/etnz/rebalance/date"
)

// Market data is persisted as a human-readable, git-friendly JSONL stream:
// one line per day, the date under the reserved "on" attribute and one
// (ticker, close) pair per column.
//
//	{"on":"2025-08-29","SPY":645.05,"TLT":86.12}

const attrOn = "on"

// DecodeMarketData reads a JSONL price stream into a MarketData collection.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	m := NewMarketData()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(line), &jobj); err != nil {
			return nil, fmt.Errorf("parse error line %d: not a correct json: %w", i, err)
		}

		jvalue, ok := jobj[attrOn]
		if !ok {
			return nil, fmt.Errorf("parse error line %d: missing the property %q with a date", i, attrOn)
		}
		jstring, ok := jvalue.(string)
		if !ok {
			return nil, fmt.Errorf("parse error line %d: property %q must be of type 'string'", i, attrOn)
		}
		on, err := date.Parse(jstring)
		if err != nil {
			return nil, fmt.Errorf("parse error line %d: property %q must be a valid date: %w", i, attrOn, err)
		}

		for ticker, price := range jobj {
			if ticker == attrOn {
				continue
			}
			p, ok := price.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error line %d: property %q must be of type 'number'", i, ticker)
			}
			m.Append(ticker, on, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeMarketData writes the market data as a JSONL price stream, one line
// per day with tickers in alphabetical order, so the output is stable for
// identical inputs.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	tickers := m.Tickers()

	seen := make(map[date.Date]bool)
	var days []date.Date
	for _, ticker := range tickers {
		for on := range m.Prices(ticker).Values() {
			if !seen[on] {
				seen[on] = true
				days = append(days, on)
			}
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, on := range days {
		var b strings.Builder
		fmt.Fprintf(&b, "{%q:%q", attrOn, on.String())
		for _, ticker := range tickers {
			price, ok := m.Prices(ticker).Get(on)
			// json does not support NaN, and a missing close is no close.
			if !ok || math.IsNaN(price) {
				continue
			}
			jprice, err := json.Marshal(price)
			if err != nil {
				return fmt.Errorf("cannot marshal price of %q on %s: %w", ticker, on, err)
			}
			fmt.Fprintf(&b, ",%q:%s", ticker, jprice)
		}
		b.WriteString("}\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("cannot write market data: %w", err)
		}
	}
	return nil
}
