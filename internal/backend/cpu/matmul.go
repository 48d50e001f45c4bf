package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/tensorext/internal/parallel"
	"github.com/born-ml/tensorext/internal/tensor"
)

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: inputs must be 2D, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimension mismatch: %v @ %v", aShape, bShape))
	}

	return cpu.matmulBatched(a, b, 1, aShape[0], aShape[1], bShape[1], tensor.Shape{aShape[0], bShape[1]})
}

// BatchMatMul performs batched matrix multiplication over the last two
// dimensions. Inputs must have the same rank (at least 3) and identical
// batch dimensions; broadcasting is the caller's job, via Expand.
func (cpu *CPUBackend) BatchMatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	ndim := len(aShape)

	if ndim < 3 {
		panic(fmt.Sprintf("batchmatmul: inputs must be at least 3D, got %dD", ndim))
	}
	if len(bShape) != ndim {
		panic(fmt.Sprintf("batchmatmul: rank mismatch: %dD vs %dD", ndim, len(bShape)))
	}
	for i := 0; i < ndim-2; i++ {
		if aShape[i] != bShape[i] {
			panic(fmt.Sprintf("batchmatmul: batch dimension mismatch at dim %d: %d vs %d", i, aShape[i], bShape[i]))
		}
	}

	m, k := aShape[ndim-2], aShape[ndim-1]
	if bShape[ndim-2] != k {
		panic(fmt.Sprintf("batchmatmul: inner dimension mismatch: %v @ %v", aShape, bShape))
	}
	n := bShape[ndim-1]

	batchSize := 1
	for i := 0; i < ndim-2; i++ {
		batchSize *= aShape[i]
	}

	outShape := aShape.Clone()
	outShape[ndim-2] = m
	outShape[ndim-1] = n

	return cpu.matmulBatched(a, b, batchSize, m, k, n, outShape)
}

func (cpu *CPUBackend) matmulBatched(a, b *tensor.RawTensor, batch, m, k, n int, outShape tensor.Shape) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	switch a.DType() {
	case tensor.Float16:
		matmulFloat16(result.AsFloat16(), a.AsFloat16(), b.AsFloat16(), batch, m, k, n)
	case tensor.Float32:
		matmulLoop(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), batch, m, k, n)
	case tensor.Float64:
		matmulLoop(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), batch, m, k, n)
	case tensor.Int32:
		matmulLoop(result.AsInt32(), a.AsInt32(), b.AsInt32(), batch, m, k, n)
	case tensor.Int64:
		matmulLoop(result.AsInt64(), a.AsInt64(), b.AsInt64(), batch, m, k, n)
	case tensor.Uint8:
		matmulLoop(result.AsUint8(), a.AsUint8(), b.AsUint8(), batch, m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulLoop computes batch independent [M, K] @ [K, N] products.
// The k-loop runs over b's rows to keep memory access sequential. Output
// rows are disjoint, so they parallelize over workers.
func matmulLoop[E numeric](c, a, b []E, batch, m, k, n int) {
	sizeA, sizeB, sizeC := m*k, k*n, m*n

	parallel.ForRows(batch, m, func(bi, i int) {
		aOff, bOff, cOff := bi*sizeA, bi*sizeB, bi*sizeC
		rowC := cOff + i*n
		for p := 0; p < k; p++ {
			av := a[aOff+i*k+p]
			rowB := bOff + p*n
			for j := 0; j < n; j++ {
				c[rowC+j] += av * b[rowB+j]
			}
		}
	}, parallel.DefaultConfig())
}

// matmulFloat16 accumulates in float32 and rounds once per output element.
func matmulFloat16(c, a, b []float16.Float16, batch, m, k, n int) {
	af := make([]float32, len(a))
	for i, v := range a {
		af[i] = v.Float32()
	}
	bf := make([]float32, len(b))
	for i, v := range b {
		bf[i] = v.Float32()
	}
	cf := make([]float32, len(c))
	matmulLoop(cf, af, bf, batch, m, k, n)
	for i, v := range cf {
		c[i] = float16.Fromfloat32(v)
	}
}
