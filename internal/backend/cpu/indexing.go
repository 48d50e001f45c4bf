package cpu

import (
	"fmt"

	"github.com/born-ml/tensorext/internal/tensor"
)

// Where selects elements from x where cond is true and from y elsewhere.
// cond must be a Bool tensor; x and y must share a dtype. All three
// operands broadcast together to the output shape.
func (cpu *CPUBackend) Where(cond, x, y *tensor.RawTensor) *tensor.RawTensor {
	if cond.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition dtype is %s, expected bool", cond.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	xyShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(cond.Shape(), xyShape)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	condStrides := broadcastStrides(cond.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)

	condData := cond.AsBool()
	xData, yData, dst := x.Data(), y.Data(), result.Data()
	elem := x.DType().Size()

	counter := newShapeCounter(outShape)
	for i := 0; i < result.NumElements(); i++ {
		var si int
		var src []byte
		if condData[counter.sourceIndex(condStrides)] {
			si, src = counter.sourceIndex(xStrides), xData
		} else {
			si, src = counter.sourceIndex(yStrides), yData
		}
		copy(dst[i*elem:(i+1)*elem], src[si*elem:(si+1)*elem])
		counter.next()
	}

	return result
}
