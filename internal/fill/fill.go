// Package fill provides the missing-value sentinel used when appends are
// allowed to leave trailing cells unset.
package fill

import (
	"math"

	"github.com/chewxy/math32"
)

// Missing returns the sentinel for an unset cell of type T: a quiet NaN
// for floating-point element types, the zero value otherwise.
func Missing[T any]() T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(math.NaN()).(T)
	case float32:
		return any(math32.NaN()).(T)
	}
	return zero
}

// IsMissing reports whether v is the sentinel returned by Missing. Only
// floating-point types have a sentinel distinguishable from ordinary
// values, so for other types this reports false.
func IsMissing[T any](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsNaN(x)
	case float32:
		return math32.IsNaN(x)
	}
	return false
}
