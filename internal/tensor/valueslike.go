package tensor

// ValuesLike creates a tensor with the shape, dtype, and device of x,
// filled with value.
//
// Example:
//
//	y := tensor.ValuesLike(x, float32(42))
func ValuesLike[T DType, B Backend](x *Tensor[T, B], value T) *Tensor[T, B] {
	return Full[T, B](x.Shape(), value, x.backend)
}

// ValuesLike is the method form of the package-level ValuesLike.
func (t *Tensor[T, B]) ValuesLike(value T) *Tensor[T, B] {
	return ValuesLike(t, value)
}

// ZerosLike creates a zero-filled tensor with the shape, dtype, and device
// of x.
func ZerosLike[T DType, B Backend](x *Tensor[T, B]) *Tensor[T, B] {
	return Zeros[T, B](x.Shape(), x.backend)
}

// OnesLike creates a one-filled tensor with the shape, dtype, and device
// of x.
func OnesLike[T DType, B Backend](x *Tensor[T, B]) *Tensor[T, B] {
	return ValuesLike(x, scalarOne[T]())
}
