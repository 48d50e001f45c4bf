package tensor

import "github.com/pkg/errors"

// Outer computes the outer product of two 1-D tensors: the result has
// shape [len(a), len(b)] with result[i, j] = a[i] * b[j].
//
// Returns InvalidShape if either input is not 1-D.
//
// Example:
//
//	a := tensor.Arange[float32](1, 4, backend) // [1, 2, 3]
//	b := tensor.Arange[float32](1, 3, backend) // [1, 2]
//	p, err := tensor.Outer(a, b)               // [[1, 2], [2, 4], [3, 6]]
func Outer[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	if len(a.Shape()) != 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "outer: first operand must be 1-D, got shape %v", a.Shape())
	}
	if len(b.Shape()) != 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "outer: second operand must be 1-D, got shape %v", b.Shape())
	}

	col := a.Reshape(a.Shape()[0], 1)
	row := b.Reshape(1, b.Shape()[0])
	return col.MatMul(row), nil
}

// Outer is the method form of the package-level Outer.
func (t *Tensor[T, B]) Outer(other *Tensor[T, B]) (*Tensor[T, B], error) {
	return Outer(t, other)
}
