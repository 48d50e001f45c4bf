// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/tensorext/internal/nn"
	"github.com/born-ml/tensorext/internal/tensor"
)

// AttentionOptions configures ScaledDotProductAttention.
//
// At most one of Mask, BoolMask, and IsCausal may be set; combining them
// is an ErrConflictingMask error.
type AttentionOptions[T tensor.Float, B tensor.Backend] = nn.AttentionOptions[T, B]

// ScaledDotProductAttention computes attention over query, key, and value:
//
//	weights = softmax(scale * Q @ K^T + mask)
//	output  = weights @ V
//
// Q has shape [..., Lq, E], K [..., Lk, E], V [..., Lk, Ev]; leading batch
// dimensions broadcast against each other, and 2-D inputs compute as a
// single batch. Returns the attention output [..., Lq, Ev] and the
// post-softmax weights [..., Lq, Lk].
//
// Example:
//
//	out, weights, err := nn.ScaledDotProductAttention(q, k, v,
//	    nn.AttentionOptions[float32, *cpu.Backend]{IsCausal: true})
func ScaledDotProductAttention[T tensor.Float, B tensor.Backend](
	q, k, v *tensor.Tensor[T, B],
	opts AttentionOptions[T, B],
) (output, weights *tensor.Tensor[T, B], err error) {
	return nn.ScaledDotProductAttention(q, k, v, opts)
}

// CausalMask builds the (seqLen, keyLen) visibility mask of causal
// attention: position (i, j) is true when key j is at or before query i.
func CausalMask[B tensor.Backend](seqLen, keyLen int, b B) (*tensor.Tensor[bool, B], error) {
	return nn.CausalMask[B](seqLen, keyLen, b)
}
