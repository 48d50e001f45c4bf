package tensor

import "github.com/pkg/errors"

// LogicalNot computes the boolean complement of x.
//
// Bool tensors are complemented directly; integer tensors are interpreted
// as truth values (non-zero is true) and the complement is returned as a
// bool tensor. Floating dtypes return DTypeMismatch.
//
// Example:
//
//	m, _ := tensor.TrilMask[bool](3, 3, 0, backend)
//	inv, err := tensor.LogicalNot(m)
func LogicalNot[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	switch x.DType() {
	case Bool:
		return New[bool, B](x.backend.Not(x.raw), x.backend), nil
	case Int32, Int64, Uint8:
		out := Zeros[bool, B](x.Shape(), x.backend)
		dst := out.Data()
		for i, v := range x.Data() {
			dst[i] = scalarToFloat64(v) == 0
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrDTypeMismatch, "logical not: dtype %s is not boolean-interpretable", x.DType())
	}
}

// LogicalNot is the method form of the package-level LogicalNot.
func (t *Tensor[T, B]) LogicalNot() (*Tensor[bool, B], error) {
	return LogicalNot(t)
}
