package tensor

import "math"

// Default tolerances for AllClose, matching the usual elementwise
// comparison convention |a-b| <= atol + rtol*|b|.
const (
	DefaultRtol = 1e-5
	DefaultAtol = 1e-8
)

// Equal reports whether two tensors have the same shape and identical
// elements. NaN compares unequal to itself, so a tensor containing NaN is
// not Equal to itself; use AllClose with EquateNaNs-style handling
// upstream if that matters.
//
// Example:
//
//	tensor.Equal(x, x) // true for any NaN-free x
func Equal[T DType, B Backend](a, b *Tensor[T, B]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}

	av, bv := a.Data(), b.Data()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// Equal is the method form of the package-level Equal.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) bool {
	return Equal(t, other)
}

// AllClose reports whether two tensors have the same shape and every
// element pair satisfies |a-b| <= DefaultAtol + DefaultRtol*|b|.
func AllClose[T DType, B Backend](a, b *Tensor[T, B]) bool {
	return AllCloseTol(a, b, DefaultRtol, DefaultAtol)
}

// AllClose is the method form of the package-level AllClose.
func (t *Tensor[T, B]) AllClose(other *Tensor[T, B]) bool {
	return AllClose(t, other)
}

// AllCloseTol reports whether two tensors have the same shape and every
// element pair satisfies |a-b| <= atol + rtol*|b|. Elements are compared
// in float64; bool maps to 0/1.
func AllCloseTol[T DType, B Backend](a, b *Tensor[T, B], rtol, atol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}

	av, bv := a.Data(), b.Data()
	for i := range av {
		x, y := scalarToFloat64(av[i]), scalarToFloat64(bv[i])
		// NaN is never close to anything, itself included.
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		// Infinities are close only to themselves; the difference test
		// below degenerates to NaN comparisons otherwise.
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}
	return true
}
