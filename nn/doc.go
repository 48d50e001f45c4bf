// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks layered on the
// tensorext operations, currently scaled dot-product attention.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorext/backend/cpu"
//	    "github.com/born-ml/tensorext/nn"
//	    "github.com/born-ml/tensorext/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    q, _ := tensor.FromSlice(qData, tensor.Shape{1, 8, 2, 64}, backend)
//	    k, _ := tensor.FromSlice(kData, tensor.Shape{1, 8, 2, 64}, backend)
//	    v, _ := tensor.FromSlice(vData, tensor.Shape{1, 8, 2, 64}, backend)
//
//	    out, weights, err := nn.ScaledDotProductAttention(q, k, v,
//	        nn.AttentionOptions[float32, *cpu.Backend]{IsCausal: true})
//	}
//
// # Masking
//
// Attention exclusion always fills true -Inf before softmax. A query row
// whose keys are all excluded therefore softmaxes to NaN; callers that
// build such masks must expect NaN rows rather than a silently uniform
// distribution.
package nn
