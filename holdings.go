package rebalance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Holding is a current position: a number of shares of one ticker held in one
// account. Its market value is shares times the ticker's current price.
type Holding struct {
	Account AccountKind `json:"account"`
	Ticker  string      `json:"ticker"`
	Shares  Quantity    `json:"shares"`
}

// DecodeHoldings reads current positions from a JSONL stream, one holding per
// line:
//
//	{"account":"roth","ticker":"TLT","shares":120.5}
//
// Blank lines are skipped. Negative share counts are rejected.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var holdings []Holding
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var h Holding
		if err := json.Unmarshal([]byte(line), &h); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, line, err)
		}
		if h.Ticker == "" {
			return nil, fmt.Errorf("format error on line %d: missing ticker", i)
		}
		if h.Shares.IsNegative() {
			return nil, fmt.Errorf("format error on line %d: negative shares for %q", i, h.Ticker)
		}
		holdings = append(holdings, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return holdings, nil
}

// EncodeHoldings writes holdings as a JSONL stream, the format DecodeHoldings
// reads.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	for _, h := range holdings {
		data, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("cannot marshal holding %q: %w", h.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}
