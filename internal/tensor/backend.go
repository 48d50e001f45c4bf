package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations; this
// library treats the backend as the tensor engine and layers its extension
// operations on top.
//
// Implementations:
//   - backend/cpu: pure Go reference backend
//
// Backends may assume validated inputs for shape-sensitive operations: the
// extension layer checks every documented precondition first and returns a
// typed error, so a backend panic indicates a library bug rather than a
// caller mistake.
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting).
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // 2D: [M, K] @ [K, N] -> [M, N]

	// BatchMatMul performs batched matrix multiplication over the last two
	// dimensions. Leading (batch) dimensions must match exactly; callers
	// that need broadcasting expand their operands first.
	BatchMatMul(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor

	// Softmax along a dimension (floating dtypes only).
	Softmax(x *RawTensor, dim int) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor // broadcast to shape
	Unsqueeze(x *RawTensor, dim int) *RawTensor  // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor    // remove dimension of size 1

	// Manipulation operations.
	Cat(tensors []*RawTensor, dim int) *RawTensor // concatenate along dimension
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // split into n equal parts

	// Selection and boolean operations.
	Where(cond, x, y *RawTensor) *RawTensor // cond ? x : y, with broadcasting
	Not(x *RawTensor) *RawTensor            // logical NOT on bool tensors

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
