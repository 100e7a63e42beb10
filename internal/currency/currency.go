// Package currency provides an exact fixed-point money value.
//
// Amounts are stored as an int64 scaled by 10^Precision, which keeps equality
// and accumulation exact across any number of additions. Arithmetic saturates
// at the int64 extremes instead of wrapping, so no operation on two Values can
// fail or panic.
package currency

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits carried by every Value.
const Precision = 4

// unitsPerWhole is 10^Precision.
var unitsPerWhole = int64(math.Pow10(Precision))

var (
	maxDecimal = decimal.NewFromInt(math.MaxInt64)
	minDecimal = decimal.NewFromInt(math.MinInt64)
)

// Value is a signed decimal amount with Precision fractional digits.
// The zero Value is 0.0000 and ready to use. Values order and compare
// directly as integers.
type Value int64

// FromUnits constructs a Value from a raw scaled integer, where units
// represents units/10^Precision.
func FromUnits(units int64) Value {
	return Value(units)
}

// Units returns the raw scaled integer.
func (v Value) Units() int64 {
	return int64(v)
}

// Add returns v + o, clamped to the int64 extremes on overflow.
func (v Value) Add(o Value) Value {
	sum := int64(v) + int64(o)
	if (int64(v) > 0 && int64(o) > 0 && sum < 0) ||
		(int64(v) < 0 && int64(o) < 0 && sum >= 0) {
		if int64(v) > 0 {
			return Value(math.MaxInt64)
		}
		return Value(math.MinInt64)
	}
	return Value(sum)
}

// Sub returns v - o, clamped to the int64 extremes on overflow.
func (v Value) Sub(o Value) Value {
	if int64(o) == math.MinInt64 {
		// -MinInt64 is not representable; split the negation.
		return v.Add(Value(math.MaxInt64)).Add(1)
	}
	return v.Add(Value(-int64(o)))
}

// IsNegative reports whether v < 0.
func (v Value) IsNegative() bool {
	return v < 0
}

// Cmp returns -1, 0 or 1 as v is less than, equal to or greater than o.
func (v Value) Cmp(o Value) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

// String renders the canonical fixed-precision form, e.g. Value(123444) is
// "12.3444" and Value(-123444) is "-12.3444".
func (v Value) String() string {
	sign := ""
	units := int64(v)
	if units < 0 {
		sign = "-"
		if units == math.MinInt64 {
			// abs overflows; format from the unsigned magnitude.
			mag := uint64(math.MaxInt64) + 1
			return fmt.Sprintf("-%d.%0*d", mag/uint64(unitsPerWhole), Precision, mag%uint64(unitsPerWhole))
		}
		units = -units
	}
	return fmt.Sprintf("%s%d.%0*d", sign, units/unitsPerWhole, Precision, units%unitsPerWhole)
}

// Parse reads a decimal floating-point literal, scales it by 10^Precision and
// truncates toward zero. Magnitudes beyond the int64 range saturate to the
// corresponding extreme rather than failing.
func Parse(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	scaled := d.Shift(Precision).Truncate(0)
	if scaled.GreaterThan(maxDecimal) {
		return Value(math.MaxInt64), nil
	}
	if scaled.LessThan(minDecimal) {
		return Value(math.MinInt64), nil
	}
	return Value(scaled.IntPart()), nil
}
