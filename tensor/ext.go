// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorext/internal/tensor"

// Extension operations. Each free function also exists as a method on
// Tensor, so both call styles work:
//
//	y, err := tensor.Tril(x, 0)
//	y, err := x.Tril(0)

// Error sentinels. Operations wrap these with context; dispatch with
// errors.Is.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrInvalidSplit    = tensor.ErrInvalidSplit
	ErrArityMismatch   = tensor.ErrArityMismatch
	ErrInvalidMask     = tensor.ErrInvalidMask
	ErrConflictingMask = tensor.ErrConflictingMask
	ErrDTypeMismatch   = tensor.ErrDTypeMismatch
)

// Default tolerances used by AllClose.
const (
	DefaultRtol = tensor.DefaultRtol
	DefaultAtol = tensor.DefaultAtol
)

// TrilMask builds a (rows, cols) tensor with ones (true for bool) on and
// below the given diagonal and zeros elsewhere.
//
// Example:
//
//	m, err := tensor.TrilMask[bool](3, 3, 0, backend)
//	// [[true, false, false],
//	//  [true, true,  false],
//	//  [true, true,  true ]]
func TrilMask[T DType, B Backend](rows, cols, diagonal int, b B) (*Tensor[T, B], error) {
	return tensor.TrilMask[T, B](rows, cols, diagonal, b)
}

// TriuMask builds a (rows, cols) tensor with ones (true for bool) on and
// above the given diagonal and zeros elsewhere.
func TriuMask[T DType, B Backend](rows, cols, diagonal int, b B) (*Tensor[T, B], error) {
	return tensor.TriuMask[T, B](rows, cols, diagonal, b)
}

// Tril zeroes out the elements above the given diagonal over the last two
// dimensions of x. x must be at least 2-D.
func Tril[T DType, B Backend](x *Tensor[T, B], diagonal int) (*Tensor[T, B], error) {
	return tensor.Tril(x, diagonal)
}

// Triu zeroes out the elements below the given diagonal over the last two
// dimensions of x. x must be at least 2-D.
func Triu[T DType, B Backend](x *Tensor[T, B], diagonal int) (*Tensor[T, B], error) {
	return tensor.Triu(x, diagonal)
}

// MaskedFill returns a copy of x where every position at which mask is
// true holds value. The mask must broadcast to x's shape without
// enlarging it.
func MaskedFill[T DType, B Backend](x *Tensor[T, B], mask *Tensor[bool, B], value T) (*Tensor[T, B], error) {
	return tensor.MaskedFill(x, mask, value)
}

// Eye creates an identity matrix for the given 2-D shape. Rectangular
// shapes are permitted.
func Eye[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Eye[T, B](shape, b)
}

// Outer computes the outer product of two 1-D tensors.
func Outer[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Outer(a, b)
}

// ValuesLike creates a tensor with the shape, dtype, and device of x,
// filled with value.
func ValuesLike[T DType, B Backend](x *Tensor[T, B], value T) *Tensor[T, B] {
	return tensor.ValuesLike(x, value)
}

// ZerosLike creates a zero-filled tensor with the shape, dtype, and device
// of x.
func ZerosLike[T DType, B Backend](x *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike(x)
}

// OnesLike creates a one-filled tensor with the shape, dtype, and device
// of x.
func OnesLike[T DType, B Backend](x *Tensor[T, B]) *Tensor[T, B] {
	return tensor.OnesLike(x)
}

// LogicalNot computes the boolean complement of x. Bool tensors are
// complemented directly; integer tensors are interpreted as truth values.
// Floating dtypes return ErrDTypeMismatch.
func LogicalNot[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return tensor.LogicalNot(x)
}

// Equal reports whether two tensors have the same shape and identical
// elements. NaN compares unequal to itself.
func Equal[T DType, B Backend](a, b *Tensor[T, B]) bool {
	return tensor.Equal(a, b)
}

// AllClose reports whether two tensors have the same shape and every
// element pair satisfies |a-b| <= DefaultAtol + DefaultRtol*|b|.
func AllClose[T DType, B Backend](a, b *Tensor[T, B]) bool {
	return tensor.AllClose(a, b)
}

// AllCloseTol is AllClose with explicit tolerances.
func AllCloseTol[T DType, B Backend](a, b *Tensor[T, B], rtol, atol float64) bool {
	return tensor.AllCloseTol(a, b, rtol, atol)
}

// Fixed-arity splitting. ChunkN splits a dimension into exactly N equal
// parts; UnbindN destructures a dimension of size exactly N; UnbindVecN
// destructures an already-materialized slice of N tensors.

// Chunk2 splits the tensor into exactly 2 equal parts along dim.
func Chunk2[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Chunk2(t, dim)
}

// Chunk3 splits the tensor into exactly 3 equal parts along dim.
func Chunk3[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Chunk3(t, dim)
}

// Chunk4 splits the tensor into exactly 4 equal parts along dim.
func Chunk4[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Chunk4(t, dim)
}

// Chunk5 splits the tensor into exactly 5 equal parts along dim.
func Chunk5[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Chunk5(t, dim)
}

// Unbind2 splits a dimension of size exactly 2 into its two slices.
func Unbind2[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Unbind2(t, dim)
}

// Unbind3 splits a dimension of size exactly 3 into its three slices.
func Unbind3[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Unbind3(t, dim)
}

// Unbind4 splits a dimension of size exactly 4 into its four slices.
func Unbind4[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Unbind4(t, dim)
}

// Unbind5 splits a dimension of size exactly 5 into its five slices.
func Unbind5[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Unbind5(t, dim)
}

// UnbindVec2 destructures a slice of exactly 2 tensors.
func UnbindVec2[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], error) {
	return tensor.UnbindVec2(ts)
}

// UnbindVec3 destructures a slice of exactly 3 tensors.
func UnbindVec3[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.UnbindVec3(ts)
}

// UnbindVec4 destructures a slice of exactly 4 tensors.
func UnbindVec4[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.UnbindVec4(ts)
}

// UnbindVec5 destructures a slice of exactly 5 tensors.
func UnbindVec5[T DType, B Backend](ts []*Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], *Tensor[T, B], error) {
	return tensor.UnbindVec5(ts)
}
