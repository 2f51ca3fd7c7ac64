// Package types - Shared money types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Percent applies a percentage to an amount: amount * p / 100.
// Percentages are applied at full precision; rounding happens only at
// the output boundary.
func Percent(amount, p decimal.Decimal) decimal.Decimal {
	return amount.Mul(p).Div(decimal.NewFromInt(100))
}

// RoundMoney rounds an amount to two decimal places for presentation.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
