package cpu

import "github.com/born-ml/tensorext/internal/tensor"

// Broadcast iteration helpers. A source shape aligned to an output shape
// from the trailing dimension gets a stride of 0 wherever the source
// dimension is 1 (or missing), so walking the output coordinates with
// these strides lands on the right source element.

// broadcastStrides returns per-output-dimension strides into src.
func broadcastStrides(src, out tensor.Shape) []int {
	srcStrides := src.ComputeStrides()
	strides := make([]int, len(out))
	offset := len(out) - len(src)
	for i := range out {
		si := i - offset
		if si < 0 || src[si] == 1 {
			strides[i] = 0
		} else {
			strides[i] = srcStrides[si]
		}
	}
	return strides
}

// binaryLoop applies op element-wise over the broadcast of a and b.
func binaryLoop[E any](dst, av, bv []E, aShape, bShape, outShape tensor.Shape, op func(E, E) E) {
	// Fast path: identical shapes, no index arithmetic.
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = op(av[i], bv[i])
		}
		return
	}

	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	counter := newShapeCounter(outShape)
	for i := range dst {
		ai, bi := 0, 0
		for d, c := range counter.coords {
			ai += c * aStrides[d]
			bi += c * bStrides[d]
		}
		dst[i] = op(av[ai], bv[bi])
		counter.next()
	}
}

// shapeCounter walks the coordinates of a shape in row-major order.
type shapeCounter struct {
	shape  tensor.Shape
	coords []int
}

func newShapeCounter(shape tensor.Shape) *shapeCounter {
	return &shapeCounter{shape: shape, coords: make([]int, len(shape))}
}

func (c *shapeCounter) next() {
	for d := len(c.coords) - 1; d >= 0; d-- {
		c.coords[d]++
		if c.coords[d] < c.shape[d] {
			return
		}
		c.coords[d] = 0
	}
}

// sourceIndex resolves the current coordinates against broadcast strides.
func (c *shapeCounter) sourceIndex(strides []int) int {
	idx := 0
	for d, coord := range c.coords {
		idx += coord * strides[d]
	}
	return idx
}
