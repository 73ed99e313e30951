package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Unit is the abbreviation appended to a compacted amount.
type Unit string

const (
	UnitNone     Unit = ""
	UnitThousand Unit = " K"
	UnitMillion  Unit = " M"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
	// amounts strictly above this and below a million are shown in thousands
	compactFloor = decimal.NewFromInt(99999)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// NaN and infinities have no decimal representation and become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Convert applies an exchange rate, turning a base-currency amount into the
// display currency.
func (m Money) Convert(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Compact scales large amounts down to thousands or millions and reports the
// unit that was applied. Amounts up to 99999 and negative amounts are returned
// unchanged with UnitNone.
func (m Money) Compact() (Money, Unit) {
	switch {
	case m.Decimal.GreaterThanOrEqual(million):
		return Money{m.Decimal.Div(million)}, UnitMillion
	case m.Decimal.GreaterThan(compactFloor):
		return Money{m.Decimal.Div(thousand)}, UnitThousand
	default:
		return m, UnitNone
	}
}

// Fixed renders the amount with exactly places fractional digits, rounding
// half away from zero. A negative places value is treated as zero.
func (m Money) Fixed(places int) string {
	if places < 0 {
		places = 0
	}
	return m.Decimal.StringFixed(int32(places))
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
