package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/tensorext/internal/tensor"
)

// Softmax computes softmax along the specified dimension.
// Softmax(x_i) = exp(x_i) / sum(exp(x_j)) for all j in the dimension.
//
// The usual max-subtraction stabilization is applied. A slice consisting
// entirely of -Inf has max -Inf, so every shifted entry is NaN and the
// whole slice normalizes to NaN. Attention masking depends on exactly this:
// a fully excluded row surfaces as NaN instead of leaking probability mass.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("softmax: dimension %d out of range for tensor of rank %d", dim, ndim))
	}

	// Float16 computes through float32.
	if x.DType() == tensor.Float16 {
		return cpu.Cast(cpu.Softmax(cpu.Cast(x, tensor.Float32), dim), tensor.Float16)
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		softmaxLoop(result.AsFloat32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		softmaxLoop(result.AsFloat64(), x.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s", x.DType()))
	}

	return result
}

func softmaxLoop[E ~float32 | ~float64](dst, src []E, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	// Number of slices that get an independent softmax.
	numRows := 1
	for i := range shape {
		if i != dim {
			numRows *= shape[i]
		}
	}

	for row := 0; row < numRows; row++ {
		// Base offset of this slice: decompose row over the non-dim axes.
		baseIdx := 0
		remaining := row
		for i := len(shape) - 1; i >= 0; i-- {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}

		// Max for numerical stability.
		maxVal := E(math.Inf(-1))
		for i := 0; i < dimSize; i++ {
			if v := src[baseIdx+i*dimStride]; v > maxVal {
				maxVal = v
			}
		}

		// exp(x - max) and running sum.
		var sum E
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			expVal := E(math.Exp(float64(src[idx] - maxVal)))
			dst[idx] = expVal
			sum += expVal
		}

		// Normalize.
		for i := 0; i < dimSize; i++ {
			dst[baseIdx+i*dimStride] /= sum
		}
	}
}
