package tensor

import "github.com/pkg/errors"

// Error kinds for the extension operations. Every failing precondition is
// detected at the call boundary and wrapped around one of these sentinels,
// so callers dispatch with errors.Is instead of parsing message text. The
// message always names the offending shapes or dtypes.
var (
	// ErrShapeMismatch reports incompatible dimensions or a failed broadcast.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidShape reports the wrong rank for a shape-sensitive operation.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidSplit reports a dimension that cannot be split into the
	// requested number of equal chunks.
	ErrInvalidSplit = errors.New("invalid split")

	// ErrArityMismatch reports a fixed-arity destructuring of a slice whose
	// length does not match.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrInvalidMask reports an attention mask that cannot be broadcast
	// against the score matrix.
	ErrInvalidMask = errors.New("invalid mask")

	// ErrConflictingMask reports a causal flag combined with an explicit
	// mask, or an additive mask combined with a boolean mask.
	ErrConflictingMask = errors.New("conflicting mask")

	// ErrDTypeMismatch reports operand dtypes that are incompatible where an
	// exact match is required.
	ErrDTypeMismatch = errors.New("dtype mismatch")
)
