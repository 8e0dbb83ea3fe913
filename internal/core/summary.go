package core

import "github.com/shopspring/decimal"

// Totals holds the sum of entry amounts per kind. Amounts are summed
// regardless of the currency field; single-currency books are assumed and
// no conversion is attempted. This limitation is inherited from the source
// design and is intentional.
type Totals struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
}

// NetWorth is total assets minus total liabilities.
func (t Totals) NetWorth() decimal.Decimal {
	return t.Assets.Sub(t.Liabilities)
}
