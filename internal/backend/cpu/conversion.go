package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/tensorext/internal/tensor"
)

// Cast converts a tensor to a different dtype. Numeric conversions go
// through float64, which holds every other numeric dtype exactly.
// Bool converts to 0/1 in either direction, with any nonzero value
// mapping to true.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, x.Device())
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	vals := readAsFloat64(x)

	switch dtype {
	case tensor.Float16:
		dst := result.AsFloat16()
		for i, v := range vals {
			dst[i] = float16.Fromfloat32(float32(v))
		}
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		copy(result.AsFloat64(), vals)
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range vals {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range vals {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range vals {
			dst[i] = uint8(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range vals {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}

func readAsFloat64(x *tensor.RawTensor) []float64 {
	vals := make([]float64, x.NumElements())

	switch x.DType() {
	case tensor.Float16:
		for i, v := range x.AsFloat16() {
			vals[i] = float64(v.Float32())
		}
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			vals[i] = float64(v)
		}
	case tensor.Float64:
		copy(vals, x.AsFloat64())
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			vals[i] = float64(v)
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			vals[i] = float64(v)
		}
	case tensor.Uint8:
		for i, v := range x.AsUint8() {
			vals[i] = float64(v)
		}
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				vals[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return vals
}
