package almost

import (
	"cmp"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// Cmp returns 0 if x and y are almost equal, a negative value if x is less
// than y and a positive value if x is greater than y.
// It returns an error matching ErrNaN if x or y is NaN.
func (a Almost) Cmp(x, y float64) (int, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, errors.Wrapf(ErrNaN, "cmp(%g, %g)", x, y)
	}

	return a.cmp(x, y), nil
}

// MustCmp is like Cmp but panics if x or y is NaN.
func (a Almost) MustCmp(x, y float64) int {
	c, err := a.Cmp(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

func (a Almost) cmp(x, y float64) int {
	if x == y {
		return 0
	}
	if a.Zero(x) && a.Zero(y) {
		return 0
	}

	diff := x - y
	// halves keep the sum of two huge magnitudes finite
	scale := math.Abs(x)/2 + math.Abs(y)/2
	if scale < a.minValue {
		scale = a.minValue
	}
	if math.Abs(diff)/scale <= a.epsilon/2 {
		return 0
	}

	if diff > 0 {
		return 1
	}
	return -1
}

// Zero reports whether |x| is at or below the absolute floor. NaN is never zero.
func (a Almost) Zero(x float64) bool {
	return math.Abs(x) <= a.minValue
}

// Equal reports whether x and y are almost equal. It panics if x or y is NaN,
// use Cmp to get an error instead.
func (a Almost) Equal(x, y float64) bool {
	return a.MustCmp(x, y) == 0
}

// Lt reports whether x is less than y and not almost equal to it.
func (a Almost) Lt(x, y float64) bool {
	return a.MustCmp(x, y) < 0
}

// Le reports whether x is less than or almost equal to y.
func (a Almost) Le(x, y float64) bool {
	return a.MustCmp(x, y) <= 0
}

// Gt reports whether x is greater than y and not almost equal to it.
func (a Almost) Gt(x, y float64) bool {
	return a.MustCmp(x, y) > 0
}

// Ge reports whether x is greater than or almost equal to y.
func (a Almost) Ge(x, y float64) bool {
	return a.MustCmp(x, y) >= 0
}

// Between reports whether x lies in the closed interval spanned by b1 and b2.
// The bounds may be passed in any order, values almost equal to a bound are inside.
func (a Almost) Between(x, b1, b2 float64) bool {
	lo, hi := bounds(b1, b2)
	return a.Ge(x, lo) && a.Le(x, hi)
}

// Outside returns 0 if x is Between b1 and b2, 1 if x is below the lower bound
// and -1 if x is above the upper bound.
func (a Almost) Outside(x, b1, b2 float64) int {
	if a.Between(x, b1, b2) {
		return 0
	}

	lo, _ := bounds(b1, b2)
	if a.Lt(x, lo) {
		return 1
	}
	return -1
}

func bounds(b1, b2 float64) (lo, hi float64) {
	if b1 > b2 {
		return b2, b1
	}
	return b1, b2
}

// EqualSlice reports whether x and y have the same length and are almost
// equal element by element. It panics if any compared element is NaN.
func (a Almost) EqualSlice(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !a.Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

// CmpSlice compares x and y lexicographically with Cmp. A shorter slice that
// is a prefix of the longer one is less.
func (a Almost) CmpSlice(x, y []float64) (int, error) {
	for i := 0; i < len(x) && i < len(y); i++ {
		c, err := a.Cmp(x[i], y[i])
		if err != nil {
			return 0, errors.Wrapf(err, "index %d", i)
		}
		if c != 0 {
			return c, nil
		}
	}

	return cmp.Compare(len(x), len(y)), nil
}

// Compare compares any ordered values. Integer and floating point kinds are
// compared with a.Cmp, other kinds (strings) keep their natural order.
func Compare[T cmp.Ordered](a Almost, x, y T) (int, error) {
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)

	switch vx.Kind() {
	case reflect.Float32, reflect.Float64:
		return a.Cmp(vx.Float(), vy.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Cmp(float64(vx.Int()), float64(vy.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Cmp(float64(vx.Uint()), float64(vy.Uint()))
	}

	return cmp.Compare(x, y), nil
}
