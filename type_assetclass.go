package rebalance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetClass classifies a ticker for tax-location purposes.
//
// The enumeration order is the tax-inefficiency order: Bond generates
// interest taxed as income and needs shelter the most, Equity generates
// capital gains and qualified dividends and needs it the least.
type AssetClass int

const (
	Bond AssetClass = iota
	Commodity
	REIT
	Equity
)

// MoreTaxInefficientThan reports whether c should be sheltered before o.
// This is the total order driving the placement waterfall.
func (c AssetClass) MoreTaxInefficientThan(o AssetClass) bool { return c < o }

func (c AssetClass) String() string {
	switch c {
	case Bond:
		return "bond"
	case Commodity:
		return "commodity"
	case REIT:
		return "reit"
	case Equity:
		return "equity"
	default:
		return fmt.Sprintf("assetclass(%d)", int(c))
	}
}

// ParseAssetClass parses an asset class name. It is case-insensitive and
// accepts a few aliases.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bond", "bonds":
		return Bond, nil
	case "commodity", "commodities":
		return Commodity, nil
	case "reit", "reits":
		return REIT, nil
	case "equity", "equities", "stock", "stocks":
		return Equity, nil
	default:
		return Equity, fmt.Errorf("unknown asset class %q", s)
	}
}

// MarshalJSON implements json.Marshaler writing the class as a json string.
func (c AssetClass) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalJSON implements json.Unmarshaler reading the class from a json string.
func (c *AssetClass) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAssetClass(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
