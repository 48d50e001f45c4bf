package tensor

import "github.com/pkg/errors"

// MaskedFill returns a tensor with the shape and dtype of x where every
// position at which the broadcast of mask is true holds value, and every
// other position holds the corresponding element of x. x is not mutated.
//
// The mask must be broadcastable to x's shape; the broadcast may not
// enlarge x. Violations return ShapeMismatch.
//
// The fill is a selection, not an arithmetic blend: NaN and Inf values in
// unmasked positions pass through bit-exact, and boolean or integer fills
// are exact.
//
// Example:
//
//	mask, _ := tensor.TriuMask[bool](2, 2, 1, backend)
//	y, err := tensor.MaskedFill(x, mask, float32(math.Inf(-1)))
func MaskedFill[T DType, B Backend](x *Tensor[T, B], mask *Tensor[bool, B], value T) (*Tensor[T, B], error) {
	if !mask.Shape().broadcastsTo(x.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "masked fill: mask shape %v does not broadcast to tensor shape %v",
			mask.Shape(), x.Shape())
	}

	fill := Full[T, B](Shape{1}, value, x.backend)
	return Where(mask, fill, x), nil
}

// MaskedFill is the method form of the package-level MaskedFill.
func (t *Tensor[T, B]) MaskedFill(mask *Tensor[bool, B], value T) (*Tensor[T, B], error) {
	return MaskedFill(t, mask, value)
}
