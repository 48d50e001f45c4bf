// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorext/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends are the tensor engine: they carry out the actual computation,
// while this package layers typed validation and the extension operations
// on top.
//
// Implementations:
//   - backend/cpu: pure Go reference backend
//
// Backends may assume validated inputs for shape-sensitive operations; the
// extension layer checks every documented precondition first and returns a
// typed error, so a backend panic indicates a library bug rather than a
// caller mistake.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorext/tensor"
//	    "github.com/born-ml/tensorext/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor      // 2D matrix multiplication.
	BatchMatMul(a, b *RawTensor) *RawTensor // Batched over the last two dims; batch dims must match exactly.

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.

	// Activation functions.
	Softmax(x *RawTensor, dim int) *RawTensor // Softmax along dimension.

	// Shape operations.
	Reshape(x *RawTensor, shape Shape) *RawTensor   // Reshape tensor.
	Transpose(x *RawTensor, axes ...int) *RawTensor // Permute dimensions.
	Expand(x *RawTensor, shape Shape) *RawTensor    // Broadcast to shape.
	Unsqueeze(x *RawTensor, dim int) *RawTensor     // Add dimension of size 1.
	Squeeze(x *RawTensor, dim int) *RawTensor       // Remove dimension of size 1.

	// Manipulation operations.
	Cat(tensors []*RawTensor, dim int) *RawTensor // Concatenate along dimension.
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // Split into n equal parts.

	// Selection and boolean operations.
	Where(cond, x, y *RawTensor) *RawTensor // Conditional element selection.
	Not(x *RawTensor) *RawTensor            // Logical NOT on bool tensors.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
