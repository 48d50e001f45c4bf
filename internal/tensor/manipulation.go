package tensor

import "github.com/pkg/errors"

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation
// dimension. Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a := tensor.Ones[float32](Shape{2, 3}, backend)
//	b := tensor.Zeros[float32](Shape{2, 5}, backend)
//	c := tensor.Cat([]*Tensor[float32, B]{a, b}, 1) // Shape: [2, 8]
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}
	if len(tensors) == 1 {
		return tensors[0].Clone()
	}

	rawTensors := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		rawTensors[i] = t.raw
	}
	return New[T, B](backend.Cat(rawTensors, dim), backend)
}

// Stack concatenates tensors along a new dimension inserted at dim.
// All tensors must have identical shapes.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{2, 3}, backend)
//	b := tensor.Zeros[float32](Shape{2, 3}, backend)
//	c := tensor.Stack([]*Tensor[float32, B]{a, b}, 0) // Shape: [2, 2, 3]
func Stack[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}
	unsqueezed := make([]*Tensor[T, B], len(tensors))
	for i, t := range tensors {
		unsqueezed[i] = t.Unsqueeze(dim)
	}
	return Cat(unsqueezed, dim)
}

// Where selects elements from x or y based on condition: for each element,
// x where the condition is true, y where it is false. Condition, x, and y
// broadcast against each other.
//
// Example:
//
//	cond := tensor.Full[bool](Shape{3}, true, backend)
//	x := tensor.Full[float32](Shape{3}, 1.0, backend)
//	y := tensor.Full[float32](Shape{3}, 0.0, backend)
//	result := tensor.Where(cond, x, y) // [1.0, 1.0, 1.0]
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](x.backend.Where(cond.raw, x.raw, y.raw), x.backend)
}

// Chunk splits the tensor into n parts of equal size along the specified
// dimension. Supports negative dim indexing.
//
// Policy: the dimension size must be divisible by n; an uneven split is an
// InvalidSplit error rather than a shorter trailing chunk.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{2, 3, 6}, backend)
//	parts, err := x.Chunk(3, -1) // 3 tensors of shape [2, 3, 2]
func (t *Tensor[T, B]) Chunk(n, dim int) ([]*Tensor[T, B], error) {
	return Chunk(t, n, dim)
}

// Chunk is the free-function form of Tensor.Chunk.
func Chunk[T DType, B Backend](t *Tensor[T, B], n, dim int) ([]*Tensor[T, B], error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSplit, "chunk: number of chunks must be positive, got %d", n)
	}
	d, ok := normalizeDim(dim, len(t.Shape()))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "chunk: dimension %d out of range for shape %v", dim, t.Shape())
	}
	if t.Shape()[d]%n != 0 {
		return nil, errors.Wrapf(ErrInvalidSplit, "chunk: dimension %d of shape %v is not divisible into %d equal parts",
			d, t.Shape(), n)
	}

	rawParts := t.backend.Chunk(t.raw, n, d)
	parts := make([]*Tensor[T, B], len(rawParts))
	for i, raw := range rawParts {
		parts[i] = New[T, B](raw, t.backend)
	}
	return parts, nil
}

// Unbind removes a dimension and returns all slices along it.
// Supports negative dim indexing.
//
// Example:
//
//	x := tensor.Ones[float32](Shape{3, 4}, backend)
//	rows, err := x.Unbind(0) // 3 tensors of shape [4]
func (t *Tensor[T, B]) Unbind(dim int) ([]*Tensor[T, B], error) {
	return Unbind(t, dim)
}

// Unbind is the free-function form of Tensor.Unbind.
func Unbind[T DType, B Backend](t *Tensor[T, B], dim int) ([]*Tensor[T, B], error) {
	d, ok := normalizeDim(dim, len(t.Shape()))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "unbind: dimension %d out of range for shape %v", dim, t.Shape())
	}

	size := t.Shape()[d]
	rawParts := t.backend.Chunk(t.raw, size, d)
	parts := make([]*Tensor[T, B], size)
	for i, raw := range rawParts {
		parts[i] = New[T, B](t.backend.Squeeze(raw, d), t.backend)
	}
	return parts, nil
}
