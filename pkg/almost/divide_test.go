package almost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivision(t *testing.T) {
	assert := assert.New(t)
	a := New()

	assert.Equal(-0.5, a.Divide(-1, 2, 0))
	assert.Equal(-0.5, a.Divide(1, -2, 0))
	assert.Equal(1.0, a.Divide(0, 0, 1))
	assert.Equal(1.0, a.Divide(-1, -1, 1))
	assert.Equal(1.0, a.DivideLimit(-1, -1, true))
	assert.Equal(1.0, a.Divide(1e-18, 1e-18, 1))
	assert.Equal(Big, a.Divide(1, 0, 1))
	assert.Equal(-Big, a.Divide(-1, 0, 1))
	assert.Equal(-Big, a.Divide(1, math.Copysign(0, -1), 1))
	assert.Equal(Big, a.Divide(-1, -1e-50, 1))
	assert.Equal(42.0, a.Divide(1e-50, -1e-50, 42))

	assert.Equal(1.0, a.DivideLimit(0, 0, true))
	assert.Equal(0.0, a.DivideLimit(0, 0, false))
	assert.Equal(2.0, a.DivideLimit(4, 2, false))

	assert.Equal(7.0, a.Divide(nan, 1, 7))
	assert.Equal(7.0, a.Divide(1, nan, 7))
	assert.Equal(7.0, a.Divide(math.Inf(1), math.Inf(-1), 7))
	assert.Equal(-Big, a.Divide(math.Inf(-1), 2, 7))
	assert.Equal(0.0, a.Divide(1, math.Inf(1), 7))

	// 1e-300 is not zero for Double, the quotient overflows
	assert.Equal(Big, Double().Divide(math.MaxFloat64, 1e-300, 0))
	assert.Equal(-Big, Double().Divide(math.MaxFloat64, -1e-300, 0))
}

func TestDivideFinite(t *testing.T) {
	values := []float64{
		-math.MaxFloat64, -1e300, -1, -1e-42, -1e-50, 0,
		1e-50, 1e-42, 1e-10, 1, 1e300, math.MaxFloat64,
	}

	for _, a := range []Almost{New(), Double()} {
		for _, n := range values {
			for _, d := range values {
				q := a.Divide(n, d, 0)
				assert.False(t, math.IsNaN(q) || math.IsInf(q, 0), "%s: %g/%g = %g", a, n, d, q)
			}
		}
	}
}

func TestReciprocal(t *testing.T) {
	a := New()

	assert.Equal(t, 0.5, a.Reciprocal(2))
	assert.Equal(t, -4.0, a.Reciprocal(-0.25))
	assert.Equal(t, Big, a.Reciprocal(0))
	assert.Equal(t, Big, a.Reciprocal(a.MinValue()/2))
	assert.False(t, math.IsInf(float64(float32(Big)), 0))
}
