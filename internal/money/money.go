// Package money represents monetary amounts as integer cents.
//
// Records coming from storage and the wire carry float64 amounts. They are
// converted to Cents on the way in, so sums and comparisons inside the ledger
// never accumulate floating-point drift, and back to float64 or a fixed
// two-decimal string on the way out.
package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Cents is an amount of money in minor units.
type Cents int64

// ErrInvalidAmount is returned when a string cannot be parsed as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

// FromFloat converts a float amount to cents, rounding half away from zero.
// Non-finite values convert to zero.
func FromFloat(f float64) Cents {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Cents(decimal.NewFromFloat(f).Shift(2).Round(0).IntPart())
}

// Parse reads a decimal string such as "12.34" into cents.
// More than two fractional digits are rounded.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Cents(d.Shift(2).Round(0).IntPart()), nil
}

// Float64 returns the amount in major units.
func (c Cents) Float64() float64 {
	return c.decimal().InexactFloat64()
}

// String formats the amount with exactly two decimals, e.g. "25.00".
func (c Cents) String() string {
	return c.decimal().StringFixed(2)
}

// Abs returns the absolute amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

func (c Cents) decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Format renders a float amount with two decimals, rounding the exact binary
// value half away from zero: 1.005 is stored as 1.00499... and renders as
// "1.00". Non-finite values render as "0.00".
func Format(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00"
	}
	return exactDecimal(f).StringFixed(2)
}

// exactDecimal expands f without the shortest-representation step of
// decimal.NewFromFloat. f = mant * 2^exp, and 2^-k = 5^k * 10^-k.
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(math.Ldexp(frac, 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(pow.Mul(pow, mant), int32(exp))
}

// Round2 rounds a float amount to two decimals.
func Round2(f float64) float64 {
	return FromFloat(f).Float64()
}
