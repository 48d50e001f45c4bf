package tensor

import "github.com/pkg/errors"

// Fixed-arity chunk wrappers. Each splits the tensor into exactly N equal
// parts along dim and destructures the result; the split itself is the one
// generic Chunk operation, the wrappers only pin the arity. The even-split
// policy of Chunk applies: a dimension not divisible by N is InvalidSplit.

// Chunk2 splits the tensor into exactly 2 equal parts along dim.
//
// Example:
//
//	lo, hi, err := x.Chunk2(-1)
func Chunk2[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	parts, err := Chunk(t, 2, dim)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// Chunk2 is the method form of the package-level Chunk2.
func (t *Tensor[T, B]) Chunk2(dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	return Chunk2(t, dim)
}

// Chunk3 splits the tensor into exactly 3 equal parts along dim.
func Chunk3[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := Chunk(t, 3, dim)
	if err != nil {
		return nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], nil
}

// Chunk3 is the method form of the package-level Chunk3.
func (t *Tensor[T, B]) Chunk3(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Chunk3(t, dim)
}

// Chunk4 splits the tensor into exactly 4 equal parts along dim.
func Chunk4[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := Chunk(t, 4, dim)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], parts[3], nil
}

// Chunk4 is the method form of the package-level Chunk4.
func (t *Tensor[T, B]) Chunk4(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Chunk4(t, dim)
}

// Chunk5 splits the tensor into exactly 5 equal parts along dim.
func Chunk5[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	parts, err := Chunk(t, 5, dim)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4], nil
}

// Chunk5 is the method form of the package-level Chunk5.
func (t *Tensor[T, B]) Chunk5(dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return Chunk5(t, dim)
}

// chunkExact is shared by the fixed-arity unbind wrappers: it requires the
// dimension size to be exactly n.
func chunkExact[T DType, B Backend](t *Tensor[T, B], n, dim int) ([]*Tensor[T, B], error) {
	d, ok := normalizeDim(dim, len(t.Shape()))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "unbind: dimension %d out of range for shape %v", dim, t.Shape())
	}
	if t.Shape()[d] != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "unbind%d: dimension %d of shape %v must have size %d",
			n, d, t.Shape(), n)
	}
	return Unbind(t, d)
}
