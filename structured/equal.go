package structured

import (
	"bytes"
	"math"
)

// Equal reports whether two values are deeply equal. Nil and empty blobs,
// sequences and mappings are equal, as are two NaN floats. Mapping pairs are
// compared in order.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)

		return ok && x == y

	case Int:
		y, ok := b.(Int)

		return ok && x == y

	case Float:
		y, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
			return math.IsNaN(float64(x)) && math.IsNaN(float64(y))
		}

		return x == y && math.Signbit(float64(x)) == math.Signbit(float64(y))

	case Bool:
		y, ok := b.(Bool)

		return ok && x == y

	case Blob:
		y, ok := b.(Blob)

		return ok && bytes.Equal(x, y)

	case Sequence:
		y, ok := b.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}

		return true

	case Mapping:
		y, ok := b.(Mapping)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Key != y[i].Key || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}

		return true

	default:
		return a == nil && b == nil
	}
}
