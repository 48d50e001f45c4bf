package tensor

import "github.com/pkg/errors"

// Eye creates an identity matrix for the given 2-D shape: ones on the main
// diagonal, zeros elsewhere. Rectangular shapes are permitted; the diagonal
// runs from (0, 0) for min(rows, cols) elements.
//
// Returns InvalidShape if the shape is not exactly 2-D or has non-positive
// dimensions.
//
// Example:
//
//	id, err := tensor.Eye[float32](Shape{3, 3}, backend)
func Eye[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrInvalidShape, "eye: shape must be 2-D, got %v", shape)
	}
	if shape[0] <= 0 || shape[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "eye: dimensions must be positive, got %v", shape)
	}

	t := Zeros[T, B](shape, b)
	one := scalarOne[T]()
	n := min(shape[0], shape[1])
	for i := 0; i < n; i++ {
		t.Set(one, i, i)
	}
	return t, nil
}
