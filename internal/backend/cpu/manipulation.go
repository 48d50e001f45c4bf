package cpu

import (
	"fmt"

	"github.com/born-ml/tensorext/internal/tensor"
)

// Data-movement operations. These are dtype-agnostic: elements are moved
// as fixed-size byte groups, so one implementation covers every dtype.

// Reshape returns a tensor with the same data under a different shape.
// The element count must match. Zero-copy: the result shares the buffer,
// which is safe because nothing in this library mutates existing tensors.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out, err := x.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing (-1 appends at the end).
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim + 1
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return cpu.Reshape(x, newShape)
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1. Supports negative dim indexing.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("squeeze: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, ndim-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return cpu.Reshape(x, newShape)
}

// Transpose permutes the tensor's dimensions. If axes is empty, all
// dimensions are reversed (the standard transpose for 2D).
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: got %d axes for %dD tensor", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid axes permutation %v for %dD tensor", axes, ndim))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	// Walk output coordinates; source index uses the permuted strides.
	srcStrides := shape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, ax := range axes {
		permStrides[i] = srcStrides[ax]
	}

	elem := x.DType().Size()
	src, dst := x.Data(), result.Data()
	counter := newShapeCounter(outShape)
	for i := 0; i < result.NumElements(); i++ {
		si := counter.sourceIndex(permStrides)
		copy(dst[i*elem:(i+1)*elem], src[si*elem:(si+1)*elem])
		counter.next()
	}

	return result
}

// Expand broadcasts the tensor to a larger shape following NumPy rules:
// dimensions align from the trailing edge, and only size-1 (or missing)
// source dimensions may stretch.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	src := x.Shape()
	if len(shape) < len(src) {
		panic(fmt.Sprintf("expand: target shape %v has lower rank than %v", shape, src))
	}
	offset := len(shape) - len(src)
	for i, dim := range src {
		if dim != shape[offset+i] && dim != 1 {
			panic(fmt.Sprintf("expand: cannot expand shape %v to %v (dimension %d)", src, shape, offset+i))
		}
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	strides := broadcastStrides(src, shape)
	elem := x.DType().Size()
	srcData, dst := x.Data(), result.Data()
	counter := newShapeCounter(shape)
	for i := 0; i < result.NumElements(); i++ {
		si := counter.sourceIndex(strides)
		copy(dst[i*elem:(i+1)*elem], srcData[si*elem:(si+1)*elem])
		counter.next()
	}

	return result
}

// Cat concatenates tensors along the specified dimension. All tensors must
// share dtype and shape except along the concatenation dimension.
// Supports negative dim indexing.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Per outer index, each input contributes one contiguous block of
	// shape[dim] * innerSize elements.
	elem := dtype.Size()
	innerSize := 1
	for d := dim + 1; d < ndim; d++ {
		innerSize *= shape[d]
	}
	outerSize := 1
	for d := 0; d < dim; d++ {
		outerSize *= shape[d]
	}

	dst := result.Data()
	outRow := totalDim * innerSize * elem
	for outer := 0; outer < outerSize; outer++ {
		dstOff := outer * outRow
		for _, t := range tensors {
			block := t.Shape()[dim] * innerSize * elem
			src := t.Data()[outer*block : (outer+1)*block]
			copy(dst[dstOff:dstOff+block], src)
			dstOff += block
		}
	}

	return result
}

// Chunk splits the tensor into n equal parts along the specified
// dimension. The dimension size must be divisible by n; the typed layer
// enforces this before the call. Supports negative dim indexing.
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if n <= 0 || shape[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: cannot split dimension %d of shape %v into %d equal parts", dim, shape, n))
	}

	partDim := shape[dim] / n
	partShape := shape.Clone()
	partShape[dim] = partDim

	elem := x.DType().Size()
	innerSize := 1
	for d := dim + 1; d < ndim; d++ {
		innerSize *= shape[d]
	}
	outerSize := 1
	for d := 0; d < dim; d++ {
		outerSize *= shape[d]
	}

	src := x.Data()
	srcRow := shape[dim] * innerSize * elem
	block := partDim * innerSize * elem

	parts := make([]*tensor.RawTensor, n)
	for p := 0; p < n; p++ {
		part, err := tensor.NewRaw(partShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		dst := part.Data()
		for outer := 0; outer < outerSize; outer++ {
			srcOff := outer*srcRow + p*block
			copy(dst[outer*block:(outer+1)*block], src[srcOff:srcOff+block])
		}
		parts[p] = part
	}

	return parts
}
