package txledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits used to render amounts.
const Precision = 4

// amountFormatter renders minor units (1/10^Precision) as a plain decimal, without
// grapheme nor thousand separator.
var amountFormatter = money.NewFormatter(Precision, ".", "", "", "1")

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | uint32 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	default:
		panic("unsupported type")
	}
}

// Amount is an exact decimal amount of funds.
//
// Its zero value is a valid zero amount.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a numeric value.
func A[T float64 | int | int64 | uint32 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal amount like "1.5" or "  2.0001".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) Decimal() decimal.Decimal         { return a.value }

// String returns the amount with exactly Precision fractional digits, e.g. "1.5000".
func (a Amount) String() string {
	minor := a.value.Round(Precision).Shift(Precision)
	if !minor.IsInteger() || minor.Abs().GreaterThan(decimal.NewFromInt(1<<62)) {
		// beyond int64 minor units, the formatter cannot help.
		return a.value.StringFixed(Precision)
	}
	return amountFormatter.Format(minor.IntPart())
}

// MarshalJSON writes the amount as a JSON number with Precision fractional digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted decimal numbers.
func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}
