package almost

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// MaxHashDigits is the largest useful digit count: the shortest decimal form
// of a float64 never has more significant digits.
const MaxHashDigits = 17

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// exactInt bounds buckets that are returned as plain integers
var exactInt = decimal.New(1, 18)

// HashCodeOf returns the bucket of v rounded to significantDigits significant
// decimal digits. Values with the same rounded form share a bucket.
//
// Zero values are bucket 0. Rounding is half away from zero on the shortest
// decimal form of v, so 3.1415 and 3.1415926 both round to 3.142 at 4 digits.
// Two values that are Equal may still straddle a rounding boundary and get
// different buckets (0.9994999 and 0.9995001 at 3 digits). Bucketing a
// continuous tolerance can not avoid that.
//
// A rounded value that is an integer is its own bucket, matching HashOf for
// integer types. Other values use the bit pattern of the rounded float64.
// significantDigits below 1 counts as 1. Counts above MaxHashDigits use
// a.SignificantDigits() instead.
func (a Almost) HashCodeOf(v float64, significantDigits int) int64 {
	if h, ok := a.hashSpecial(v); ok {
		return h
	}
	return hashDecimal(decimal.NewFromFloat(v), a.hashDigits(significantDigits))
}

// HashCode is HashCodeOf with a.SignificantDigits().
func (a Almost) HashCode(v float64) int64 {
	return a.HashCodeOf(v, a.SignificantDigits())
}

// HashOf returns the bucket of any number. Integers are hashed as is,
// floating point values are bucketed like a.HashCodeOf. A float32 is rounded
// from its own shortest decimal form, not from its float64 widening.
func HashOf[T Number](a Almost, v T, significantDigits int) int64 {
	var one T = 1
	if one/2 == 0 {
		return int64(v)
	}

	f := float64(v)
	if h, ok := a.hashSpecial(f); ok {
		return h
	}

	digits := a.hashDigits(significantDigits)
	if reflect.ValueOf(v).Kind() == reflect.Float32 {
		return hashDecimal(decimal.NewFromFloat32(float32(v)), digits)
	}
	return hashDecimal(decimal.NewFromFloat(f), digits)
}

// hashSpecial buckets NaN, infinities and zero values
func (a Almost) hashSpecial(v float64) (int64, bool) {
	switch {
	case math.IsNaN(v):
		return int64(math.Float64bits(math.NaN())), true
	case math.IsInf(v, 0):
		return int64(math.Float64bits(v)), true
	case a.Zero(v):
		return 0, true
	}
	return 0, false
}

// hashDigits clamps a requested digit count. Counts beyond MaxHashDigits can
// not be resolved by a float64 and fall back to the precision of a.
func (a Almost) hashDigits(significantDigits int) int {
	if significantDigits > MaxHashDigits {
		significantDigits = a.SignificantDigits()
	}
	return min(max(significantDigits, 1), MaxHashDigits)
}

func hashDecimal(d decimal.Decimal, digits int) int64 {
	r := d.Round(int32(digits - 1 - magnitude(d)))

	if r.IsInteger() && r.Abs().LessThan(exactInt) {
		return r.IntPart()
	}

	f, _ := r.Float64()
	return int64(math.Float64bits(f))
}

// magnitude returns floor(log10(|d|)) for non-zero d
func magnitude(d decimal.Decimal) int {
	c := new(big.Int).Abs(d.Coefficient())
	return len(c.String()) - 1 + int(d.Exponent())
}
