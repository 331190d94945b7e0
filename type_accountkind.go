package rebalance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccountKind identifies one of the tax-differentiated accounts.
//
// The enumeration order is the tax-advantage order: Roth grows tax-free,
// Traditional defers taxes, Taxable shelters nothing. The waterfall fills
// accounts in this order.
type AccountKind int

const (
	Roth AccountKind = iota
	Traditional
	Taxable
)

// AccountKinds lists all account kinds in tax-advantage order.
var AccountKinds = []AccountKind{Roth, Traditional, Taxable}

// MoreTaxAdvantagedThan reports whether k shelters gains better than o.
func (k AccountKind) MoreTaxAdvantagedThan(o AccountKind) bool { return k < o }

func (k AccountKind) String() string {
	switch k {
	case Roth:
		return "roth"
	case Traditional:
		return "traditional"
	case Taxable:
		return "taxable"
	default:
		return fmt.Sprintf("accountkind(%d)", int(k))
	}
}

// Label returns a human readable account name for reports.
func (k AccountKind) Label() string {
	switch k {
	case Roth:
		return "Roth IRA"
	case Traditional:
		return "Traditional IRA / 401k"
	case Taxable:
		return "Taxable Brokerage"
	default:
		return k.String()
	}
}

// ParseAccountKind parses an account kind name. It is case-insensitive and
// accepts the common account aliases.
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roth", "hsa":
		return Roth, nil
	case "traditional", "ira", "401k", "trad":
		return Traditional, nil
	case "taxable", "brokerage":
		return Taxable, nil
	default:
		return Taxable, fmt.Errorf("unknown account kind %q", s)
	}
}

// MarshalJSON implements json.Marshaler writing the kind as a json string.
func (k AccountKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON implements json.Unmarshaler reading the kind from a json string.
func (k *AccountKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
