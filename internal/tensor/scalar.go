package tensor

import (
	"math"

	"github.com/x448/float16"
)

// Scalar conversion helpers shared by the creation functions and the
// extension operations. Each supported element type has one canonical
// mapping to and from float64; bool maps to 0/1.

// scalarOne returns the multiplicative identity of T (true for bool).
func scalarOne[T DType]() T {
	return scalarFromFloat64[T](1)
}

// scalarFromFloat64 converts a float64 into the element type T.
// For bool, any non-zero value becomes true. For float16 the value is
// rounded to the nearest representable binary16 value.
func scalarFromFloat64[T DType](v float64) T {
	var dummy T
	var out any
	switch any(dummy).(type) {
	case float16.Float16:
		out = float16.Fromfloat32(float32(v))
	case float32:
		out = float32(v)
	case float64:
		out = v
	case int32:
		out = int32(v)
	case int64:
		out = int64(v)
	case uint8:
		out = uint8(v)
	case bool:
		out = v != 0
	default:
		panic("unsupported type")
	}
	return out.(T)
}

// scalarToFloat64 converts an element of type T to float64.
// Bool maps to 0/1 so comparison helpers can treat every dtype numerically.
func scalarToFloat64[T DType](v T) float64 {
	switch x := any(v).(type) {
	case float16.Float16:
		return float64(x.Float32())
	case float32:
		return float64(x)
	case float64:
		return x
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic("unsupported type")
	}
}

// FromFloat64 converts a float64 into the element type T using the same
// rounding rules as the creation functions.
func FromFloat64[T DType](v float64) T {
	return scalarFromFloat64[T](v)
}

// NegativeInfinity returns the true negative infinity of the floating
// element type T. See negativeInfinity.
func NegativeInfinity[T Float]() T {
	return negativeInfinity[T]()
}

// negativeInfinity returns the true negative infinity of the floating
// element type T. Attention masking relies on -Inf (never a large finite
// constant) so that fully excluded rows softmax to NaN instead of leaking
// near-zero probability mass.
func negativeInfinity[T Float]() T {
	var dummy T
	var out any
	switch any(dummy).(type) {
	case float16.Float16:
		out = float16.Inf(-1)
	case float32:
		out = float32(math.Inf(-1))
	case float64:
		out = math.Inf(-1)
	default:
		panic("unsupported type")
	}
	return out.(T)
}
