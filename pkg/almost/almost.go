// Package almost implements tolerant comparison of floating point values.
//
// An Almost holds a relative epsilon and an absolute minimum value. Two values
// are equal when their difference, normalized by their average magnitude, is
// within half of the epsilon, and any magnitude at or below the minimum value
// is treated as zero. Ordering, range checks, safe division and hashing are
// built on that single notion of equality.
//
// Almost is immutable and safe for concurrent use.
//
// Equal, Lt, Between and the other predicates panic on NaN operands. Use Cmp
// or Compare to get an error instead.
package almost

import (
	"encoding/binary"
	"math"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// FloatEpsilon is the machine epsilon of float32.
	FloatEpsilon = 0x1p-23
	// DoubleEpsilon is the machine epsilon of float64.
	DoubleEpsilon = 0x1p-52

	// DefaultEpsilon tolerates single precision noise.
	DefaultEpsilon = 10 * FloatEpsilon
	// DefaultMinValue is the default absolute floor.
	DefaultMinValue = 100 * math.SmallestNonzeroFloat32

	// MaxEpsilon is the largest accepted relative epsilon.
	MaxEpsilon = 0.1
)

// Almost compares floating point values within a configured tolerance.
// The zero value is not usable, build one with New or one of the NewXxx functions.
type Almost struct {
	epsilon  float64
	minValue float64
}

var (
	// Float returns the shared default instance, the same as New().
	Float = sync.OnceValue(func() Almost {
		return New()
	})

	// Double returns the shared instance tuned for float64 noise.
	Double = sync.OnceValue(func() Almost {
		return Almost{
			epsilon:  10 * DoubleEpsilon,
			minValue: 100 * math.SmallestNonzeroFloat64,
		}
	})
)

// New returns Almost with DefaultEpsilon and DefaultMinValue.
func New() Almost {
	return Almost{
		epsilon:  DefaultEpsilon,
		minValue: DefaultMinValue,
	}
}

// NewEpsilon returns Almost with the given relative epsilon and DefaultMinValue.
func NewEpsilon(epsilon float64) (Almost, error) {
	return NewEpsilonMinValue(epsilon, DefaultMinValue)
}

// NewSignificantDigits returns Almost with epsilon 10^-digits.
func NewSignificantDigits(digits int) (Almost, error) {
	if digits < 0 {
		return Almost{}, errors.Wrapf(ErrInvalidSignificantDigits, "%d is negative", digits)
	}

	a, err := NewEpsilon(math.Pow10(-digits))
	if err != nil {
		return Almost{}, errors.Wrapf(err, "significant digits %d", digits)
	}

	return a, nil
}

// NewEpsilonMinValue returns Almost with explicit epsilon and absolute floor.
func NewEpsilonMinValue(epsilon, minValue float64) (Almost, error) {
	// negated form also rejects NaN
	if !(epsilon > 0 && epsilon <= MaxEpsilon) {
		return Almost{}, errors.Wrapf(ErrInvalidEpsilon, "%g not in (0, %g]", epsilon, MaxEpsilon)
	}
	if !(minValue > 0) || math.IsInf(minValue, 1) {
		return Almost{}, errors.Wrapf(ErrInvalidMinValue, "%g is not a positive finite value", minValue)
	}

	return Almost{epsilon: epsilon, minValue: minValue}, nil
}

// Epsilon returns the relative tolerance.
func (a Almost) Epsilon() float64 {
	return a.epsilon
}

// MinValue returns the magnitude at or below which values are zero.
func (a Almost) MinValue() float64 {
	return a.minValue
}

// SignificantDigits returns the number of significant decimal digits implied
// by the epsilon: 4 for 1e-4, 5 for 1.19e-6. It is never less than 1.
func (a Almost) SignificantDigits() int {
	eps := decimal.NewFromFloat(a.epsilon)
	mag := magnitude(eps)

	digits := -mag
	if !eps.Equal(decimal.New(1, int32(mag))) {
		digits--
	}
	if digits < 1 {
		return 1
	}

	return digits
}

// Hash returns a hash of the configuration. Equal configurations have equal hashes.
func (a Almost) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(a.epsilon))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(a.minValue))

	return xxhash.Sum64(buf[:])
}

func (a Almost) String() string {
	return "almost.Almost{epsilon: " + strconv.FormatFloat(a.epsilon, 'g', -1, 64) +
		", minValue: " + strconv.FormatFloat(a.minValue, 'g', -1, 64) + "}"
}
