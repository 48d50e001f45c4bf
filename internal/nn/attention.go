// Package nn implements neural network building blocks layered on the
// tensor extension operations, currently scaled dot-product attention.
package nn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/tensorext/internal/tensor"
)

// AttentionOptions configures ScaledDotProductAttention.
//
// At most one of Mask, BoolMask, and IsCausal may be set; combining them is
// a ConflictingMask error rather than a silent precedence rule.
type AttentionOptions[T tensor.Float, B tensor.Backend] struct {
	// Mask is an additive attention mask broadcastable to the score shape
	// [..., Lq, Lk]. It is added to the scaled scores before softmax, so
	// excluded positions carry -Inf and soft biases carry finite values.
	Mask *tensor.Tensor[T, B]

	// BoolMask marks allowed positions: true keeps a score, false excludes
	// it by filling -Inf. Must be broadcastable to [..., Lq, Lk].
	BoolMask *tensor.Tensor[bool, B]

	// IsCausal excludes every key position ahead of the query position,
	// equivalent to a BoolMask of CausalMask(Lq, Lk).
	IsCausal bool

	// Scale overrides the score scaling factor. Zero means the default
	// 1/sqrt(E) where E is the embedding dimension.
	Scale float64

	// DropoutP is the attention dropout probability, in [0, 1). This
	// library runs inference only, so the value is validated but no
	// dropout is applied.
	DropoutP float64
}

// ScaledDotProductAttention computes attention over query, key, and value:
//
//	weights = softmax(scale * Q @ K^T + mask)
//	output  = weights @ V
//
// Q has shape [..., Lq, E], K [..., Lk, E], V [..., Lk, Ev]; leading batch
// dimensions broadcast against each other. 2-D inputs are treated as a
// single batch. Both the attention output [..., Lq, Ev] and the
// post-softmax weights [..., Lq, Lk] are returned.
//
// Exclusion uses true -Inf, so a query row with every key excluded
// softmaxes to NaN instead of a leaked uniform distribution. Callers that
// build such masks must expect NaN rows.
func ScaledDotProductAttention[T tensor.Float, B tensor.Backend](
	q, k, v *tensor.Tensor[T, B],
	opts AttentionOptions[T, B],
) (output, weights *tensor.Tensor[T, B], err error) {
	qShape, kShape, vShape := q.Shape(), k.Shape(), v.Shape()
	rank := len(qShape)

	if rank < 2 {
		return nil, nil, errors.Wrapf(tensor.ErrInvalidShape,
			"attention: query must be at least 2-D, got shape %v", qShape)
	}
	if len(kShape) != rank || len(vShape) != rank {
		return nil, nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"attention: rank mismatch: q %v, k %v, v %v", qShape, kShape, vShape)
	}

	lq, e := qShape[rank-2], qShape[rank-1]
	lk := kShape[rank-2]
	if kShape[rank-1] != e {
		return nil, nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"attention: embedding dimension mismatch: q %v vs k %v", qShape, kShape)
	}
	if vShape[rank-2] != lk {
		return nil, nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"attention: key length mismatch: k %v vs v %v", kShape, vShape)
	}
	ev := vShape[rank-1]

	maskCount := 0
	if opts.Mask != nil {
		maskCount++
	}
	if opts.BoolMask != nil {
		maskCount++
	}
	if opts.IsCausal {
		maskCount++
	}
	if maskCount > 1 {
		return nil, nil, errors.Wrap(tensor.ErrConflictingMask,
			"attention: at most one of Mask, BoolMask, and IsCausal may be set")
	}

	if opts.DropoutP < 0 || opts.DropoutP >= 1 {
		return nil, nil, errors.Errorf("attention: dropout probability must be in [0, 1), got %v", opts.DropoutP)
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1 / math.Sqrt(float64(e))
	}

	// 2-D inputs compute as a batch of one.
	inserted := false
	if rank == 2 {
		q, k, v = q.Unsqueeze(0), k.Unsqueeze(0), v.Unsqueeze(0)
		rank, inserted = 3, true
	}

	// BatchMatMul needs exact batch dimensions, so broadcast them here.
	batch, err := batchShape(q.Shape(), k.Shape(), v.Shape())
	if err != nil {
		return nil, nil, err
	}
	q = q.Expand(append(batch.Clone(), lq, e))
	k = k.Expand(append(batch.Clone(), lk, e))
	v = v.Expand(append(batch.Clone(), lk, ev))

	perm := make([]int, rank)
	for i := range perm {
		perm[i] = i
	}
	perm[rank-2], perm[rank-1] = perm[rank-1], perm[rank-2]

	scores := q.MulScalar(tensor.FromFloat64[T](scale)).BatchMatMul(k.Transpose(perm...))

	switch {
	case opts.IsCausal:
		visible, maskErr := CausalMask[B](lq, lk, q.Backend())
		if maskErr != nil {
			return nil, nil, maskErr
		}
		scores, err = excludeScores(scores, visible)
	case opts.BoolMask != nil:
		if !broadcastsTo(opts.BoolMask.Shape(), scores.Shape()) {
			return nil, nil, errors.Wrapf(tensor.ErrInvalidMask,
				"attention: bool mask shape %v does not broadcast to score shape %v",
				opts.BoolMask.Shape(), scores.Shape())
		}
		scores, err = excludeScores(scores, opts.BoolMask)
	case opts.Mask != nil:
		if !broadcastsTo(opts.Mask.Shape(), scores.Shape()) {
			return nil, nil, errors.Wrapf(tensor.ErrInvalidMask,
				"attention: mask shape %v does not broadcast to score shape %v",
				opts.Mask.Shape(), scores.Shape())
		}
		scores = scores.Add(opts.Mask)
	}
	if err != nil {
		return nil, nil, err
	}

	weights = scores.Softmax(-1)
	output = weights.BatchMatMul(v)

	if inserted {
		output = output.Squeeze(0)
		weights = weights.Squeeze(0)
	}
	return output, weights, nil
}

// CausalMask builds the (seqLen, keyLen) visibility mask of causal
// attention: position (i, j) is true when key j is at or before query i.
func CausalMask[B tensor.Backend](seqLen, keyLen int, b B) (*tensor.Tensor[bool, B], error) {
	return tensor.TrilMask[bool, B](seqLen, keyLen, 0, b)
}

// excludeScores fills -Inf wherever visible is false.
func excludeScores[T tensor.Float, B tensor.Backend](
	scores *tensor.Tensor[T, B],
	visible *tensor.Tensor[bool, B],
) (*tensor.Tensor[T, B], error) {
	excluded, err := visible.LogicalNot()
	if err != nil {
		return nil, err
	}
	return scores.MaskedFill(excluded, tensor.NegativeInfinity[T]())
}

// batchShape broadcasts the leading (batch) dimensions of the three
// operand shapes.
func batchShape(q, k, v tensor.Shape) (tensor.Shape, error) {
	rank := len(q)
	qb, kb, vb := q[:rank-2], k[:rank-2], v[:rank-2]

	qk, _, err := tensor.BroadcastShapes(qb, kb)
	if err != nil {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"attention: batch dimensions of q %v and k %v do not broadcast", q, k)
	}
	batch, _, err := tensor.BroadcastShapes(qk, vb)
	if err != nil {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"attention: batch dimensions of v %v do not broadcast with q %v and k %v", v, q, k)
	}
	return batch, nil
}

func broadcastsTo(s, target tensor.Shape) bool {
	out, _, err := tensor.BroadcastShapes(s, target)
	return err == nil && out.Equal(target)
}
