package tensor

import "github.com/pkg/errors"

// Triangular mask construction and extraction.
//
// Diagonal offset semantics (shared by all four operations): element (i, j)
// belongs to the lower triangle when j-i <= diagonal and to the upper
// triangle when j-i >= diagonal. diagonal = 0 includes the main diagonal,
// positive values shift the boundary toward the upper-right, negative
// toward the lower-left.
//
// The diagonal is NOT validated against the matrix dimensions: an
// out-of-range offset degenerates to an all-zero or all-one mask (and to an
// unchanged or all-zero tensor for Tril/Triu). This matches the reference
// behavior and is covered by tests.

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
	return triangularMask[T, B](rows, cols, diagonal, true, b)
}

// TriuMask builds a (rows, cols) tensor with ones (true for bool) on and
// above the given diagonal and zeros elsewhere.
func TriuMask[T DType, B Backend](rows, cols, diagonal int, b B) (*Tensor[T, B], error) {
	return triangularMask[T, B](rows, cols, diagonal, false, b)
}

func triangularMask[T DType, B Backend](rows, cols, diagonal int, lower bool, b B) (*Tensor[T, B], error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "triangular mask: dimensions must be positive, got (%d, %d)", rows, cols)
	}

	t := Zeros[T, B](Shape{rows, cols}, b)
	one := scalarOne[T]()
	data := t.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := j - i
			if (lower && d <= diagonal) || (!lower && d >= diagonal) {
				data[i*cols+j] = one
			}
		}
	}
	return t, nil
}

// Tril zeroes out the elements above the given diagonal over the last two
// dimensions of x. x must be at least 2-D.
//
// Tril(X, d) + Triu(X, d+1) reconstructs X exactly for any d.
func Tril[T DType, B Backend](x *Tensor[T, B], diagonal int) (*Tensor[T, B], error) {
	return triangular(x, diagonal, true)
}

// Tril is the method form of the package-level Tril.
func (t *Tensor[T, B]) Tril(diagonal int) (*Tensor[T, B], error) {
	return Tril(t, diagonal)
}

// Triu zeroes out the elements below the given diagonal over the last two
// dimensions of x. x must be at least 2-D.
func Triu[T DType, B Backend](x *Tensor[T, B], diagonal int) (*Tensor[T, B], error) {
	return triangular(x, diagonal, false)
}

// Triu is the method form of the package-level Triu.
func (t *Tensor[T, B]) Triu(diagonal int) (*Tensor[T, B], error) {
	return Triu(t, diagonal)
}

func triangular[T DType, B Backend](x *Tensor[T, B], diagonal int, lower bool) (*Tensor[T, B], error) {
	shape := x.Shape()
	if len(shape) < 2 {
		return nil, errors.Wrapf(ErrInvalidShape, "triangular: tensor must be at least 2-D, got shape %v", shape)
	}
	rows, cols := shape[len(shape)-2], shape[len(shape)-1]

	// Drop the complement triangle: for tril everything with j-i > d, which
	// is the upper triangle at offset d+1; symmetrically for triu.
	var drop *Tensor[bool, B]
	var err error
	if lower {
		drop, err = TriuMask[bool, B](rows, cols, diagonal+1, x.backend)
	} else {
		drop, err = TrilMask[bool, B](rows, cols, diagonal-1, x.backend)
	}
	if err != nil {
		return nil, err
	}
	return MaskedFill(x, drop, scalarFromFloat64[T](0))
}
