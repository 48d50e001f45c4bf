// Package cpu implements the pure Go reference backend for tensorext.
//
// Shape preconditions are validated by the extension layer before an
// operation reaches the backend, so violations here panic: a panic out of
// this package is a library bug, not a caller error.
package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/tensorext/internal/tensor"
)

// CPUBackend implements tensor operations on CPU in pure Go.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{device: tensor.CPU}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

type binaryKind int

const (
	opAdd binaryKind = iota
	opSub
	opMul
	opDiv
)

func (k binaryKind) String() string {
	switch k {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	case opDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMul, a, b)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opDiv, a, b)
}

func (cpu *CPUBackend) binary(kind binaryKind, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", kind, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", kind, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", kind, err))
	}

	switch a.DType() {
	case tensor.Float16:
		binaryLoop(result.AsFloat16(), a.AsFloat16(), b.AsFloat16(), a.Shape(), b.Shape(), outShape, float16Op(kind))
	case tensor.Float32:
		binaryLoop(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, numericOp[float32](kind))
	case tensor.Float64:
		binaryLoop(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, numericOp[float64](kind))
	case tensor.Int32:
		binaryLoop(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, numericOp[int32](kind))
	case tensor.Int64:
		binaryLoop(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, numericOp[int64](kind))
	case tensor.Uint8:
		binaryLoop(result.AsUint8(), a.AsUint8(), b.AsUint8(), a.Shape(), b.Shape(), outShape, numericOp[uint8](kind))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", kind, a.DType()))
	}

	return result
}

type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

func numericOp[E numeric](kind binaryKind) func(E, E) E {
	switch kind {
	case opAdd:
		return func(x, y E) E { return x + y }
	case opSub:
		return func(x, y E) E { return x - y }
	case opMul:
		return func(x, y E) E { return x * y }
	case opDiv:
		return func(x, y E) E { return x / y }
	default:
		panic("unknown binary op")
	}
}

// float16Op routes binary arithmetic through float32, rounding the result
// back to binary16.
func float16Op(kind binaryKind) func(float16.Float16, float16.Float16) float16.Float16 {
	op := numericOp[float32](kind)
	return func(x, y float16.Float16) float16.Float16 {
		return float16.Fromfloat32(op(x.Float32(), y.Float32()))
	}
}
