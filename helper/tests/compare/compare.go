// Package compare holds NaN aware helpers for comparing float results in tests.
package compare

import (
	"math"

	"github.com/shvyrev/jtk/pkg/almost"
)

// NearlyEqualSlice reports whether a and b are almost equal element by element
// with almost.Double(). NaN matches only NaN.
func NearlyEqualSlice(a, b []float64) bool {
	return NearlyEqualSliceWith(almost.Double(), a, b)
}

// NearlyEqualSliceWith is NearlyEqualSlice with an explicit tolerance.
func NearlyEqualSliceWith(al almost.Almost, a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !NearlyEqualWith(al, a[i], b[i]) {
			return false
		}
	}

	return true
}

// NearlyEqual reports whether a and b are almost equal with almost.Double().
// Two NaN are "same".
func NearlyEqual(a, b float64) bool {
	return NearlyEqualWith(almost.Double(), a, b)
}

// NearlyEqualWith is NearlyEqual with an explicit tolerance.
func NearlyEqualWith(al almost.Almost, a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		// unexpected NaN
		return false
	}

	return al.Equal(a, b)
}

// HashSlice returns buckets of values, NaN included, for use as map keys in tests.
func HashSlice(al almost.Almost, values []float64) []int64 {
	hashes := make([]int64, len(values))
	for i, v := range values {
		hashes[i] = al.HashCode(v)
	}
	return hashes
}
