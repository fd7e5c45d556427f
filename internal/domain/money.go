package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an amount in a display currency. The engine never does arithmetic
// across currencies.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Equal compares amount and currency; decimal.Equal ignores exponent
// differences, i.e. 1.5 == 1.50.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency.String() == other.Currency.String()
}
