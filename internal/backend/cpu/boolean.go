package cpu

import (
	"fmt"

	"github.com/born-ml/tensorext/internal/tensor"
)

// Not computes the element-wise logical negation of a Bool tensor.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("not: dtype is %s, expected bool", x.DType()))
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, x.Device())
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}

	dst := result.AsBool()
	for i, v := range x.AsBool() {
		dst[i] = !v
	}

	return result
}
