package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/tensorext/internal/tensor"
)

// MulScalar multiplies every element by a scalar. The scalar may be any Go
// numeric type; it is converted to the tensor's dtype before the loop.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarAsFloat64(scalar)

	result, err := tensor.NewRaw(x.Shape(), x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("mulscalar: %v", err))
	}

	switch x.DType() {
	case tensor.Float16:
		sv := float32(s)
		dst := result.AsFloat16()
		for i, v := range x.AsFloat16() {
			dst[i] = float16.Fromfloat32(v.Float32() * sv)
		}
	case tensor.Float32:
		mulScalarLoop(result.AsFloat32(), x.AsFloat32(), float32(s))
	case tensor.Float64:
		mulScalarLoop(result.AsFloat64(), x.AsFloat64(), s)
	case tensor.Int32:
		mulScalarLoop(result.AsInt32(), x.AsInt32(), int32(s))
	case tensor.Int64:
		mulScalarLoop(result.AsInt64(), x.AsInt64(), int64(s))
	case tensor.Uint8:
		mulScalarLoop(result.AsUint8(), x.AsUint8(), uint8(s))
	default:
		panic(fmt.Sprintf("mulscalar: unsupported dtype %s", x.DType()))
	}

	return result
}

func mulScalarLoop[E numeric](dst, src []E, s E) {
	for i, v := range src {
		dst[i] = v * s
	}
}

func scalarAsFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float16.Float16:
		return float64(v.Float32())
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	default:
		panic(fmt.Sprintf("mulscalar: unsupported scalar type %T", scalar))
	}
}
