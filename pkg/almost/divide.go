package almost

import "math"

// Big replaces infinite quotients. It is a float32 value that a hundred
// additions still keep finite.
const Big = 0.01 * math.MaxFloat32

// Divide returns numerator/denominator without ever producing Inf or NaN.
//
// If both operands are Zero (or either is NaN) the result is valueIfZeroOverZero.
// If only the denominator is Zero the result is Big with the sign of
// numerator*denominator. Quotients overflowing to infinity are clamped to ±Big.
func (a Almost) Divide(numerator, denominator, valueIfZeroOverZero float64) float64 {
	if math.IsNaN(numerator) || math.IsNaN(denominator) {
		return valueIfZeroOverZero
	}

	if a.Zero(denominator) {
		if a.Zero(numerator) {
			return valueIfZeroOverZero
		}
		return signedBig(numerator, denominator)
	}

	q := numerator / denominator
	switch {
	case math.IsNaN(q):
		// Inf/Inf
		return valueIfZeroOverZero
	case math.IsInf(q, 0):
		return signedBig(numerator, denominator)
	}

	return q
}

// DivideLimit is Divide where 0/0 is 1 if limitIsOne and 0 otherwise.
func (a Almost) DivideLimit(numerator, denominator float64, limitIsOne bool) float64 {
	var value float64
	if limitIsOne {
		value = 1
	}
	return a.Divide(numerator, denominator, value)
}

// Reciprocal returns 1/x, or Big if x is Zero.
func (a Almost) Reciprocal(x float64) float64 {
	return a.Divide(1, x, Big)
}

func signedBig(numerator, denominator float64) float64 {
	if math.Signbit(numerator) != math.Signbit(denominator) {
		return -Big
	}
	return Big
}
