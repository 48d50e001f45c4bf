package tensor

import "github.com/pkg/errors"

// Fixed-arity unbind wrappers. Each requires the dimension size to be
// exactly N (ShapeMismatch otherwise) and destructures the slices along it.
// The UnbindVecN forms destructure an already-materialized slice of
// tensors instead (ArityMismatch when the length differs).

// Unbind2 splits a dimension of size exactly 2 into its two slices.
//
// Example:
//
//	a, b, err := x.Unbind2(0)
func Unbind2[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	parts, err := chunkExact(t, 2, dim)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// Unbind2 is the method form of the package-level Unbind2.
func (t *Tensor[T, B]) Unbind2(dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	return Unbind2(t, dim)
}

// Unbind3 splits a dimension of size exactly 3 into its three slices.
func Unbind3[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := chunkExact(t, 3, dim)
	if err != nil {
		return nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], nil
}

// Unbind3 is the method form of the package-level Unbind3.
func (t *Tensor[T, B]) Unbind3(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Unbind3(t, dim)
}

// Unbind4 splits a dimension of size exactly 4 into its four slices.
func Unbind4[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := chunkExact(t, 4, dim)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], parts[3], nil
}

// Unbind4 is the method form of the package-level Unbind4.
func (t *Tensor[T, B]) Unbind4(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Unbind4(t, dim)
}

// Unbind5 splits a dimension of size exactly 5 into its five slices.
func Unbind5[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := chunkExact(t, 5, dim)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4], nil
}

// Unbind5 is the method form of the package-level Unbind5.
func (t *Tensor[T, B]) Unbind5(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Unbind5(t, dim)
}

func unbindVec[T DType, B Backend](ts []*Tensor[T, B], n int) error {
	if len(ts) != n {
		return errors.Wrapf(ErrArityMismatch, "unbind_vec%d: expected %d tensors, got %d", n, n, len(ts))
	}
	return nil
}

// UnbindVec2 destructures a slice of exactly 2 tensors.
func UnbindVec2[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], error) {
	if err := unbindVec(ts, 2); err != nil {
		return nil, nil, err
	}
	return ts[0], ts[1], nil
}

// UnbindVec3 destructures a slice of exactly 3 tensors.
func UnbindVec3[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	if err := unbindVec(ts, 3); err != nil {
		return nil, nil, nil, err
	}
	return ts[0], ts[1], ts[2], nil
}

// UnbindVec4 destructures a slice of exactly 4 tensors.
func UnbindVec4[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	if err := unbindVec(ts, 4); err != nil {
		return nil, nil, nil, nil, err
	}
	return ts[0], ts[1], ts[2], ts[3], nil
}

// UnbindVec5 destructures a slice of exactly 5 tensors.
func UnbindVec5[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	if err := unbindVec(ts, 5); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return ts[0], ts[1], ts[2], ts[3], ts[4], nil
}
