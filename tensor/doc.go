// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor extension operations.
//
// # Overview
//
// tensorext layers convenience operations on top of a pluggable tensor
// engine (the Backend interface). This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Triangular masks and extraction (TrilMask, TriuMask, Tril, Triu)
//   - Masked fill via boolean selection (MaskedFill)
//   - Fixed-arity splitting and destructuring (Chunk2..5, Unbind2..5)
//   - Construction helpers (Eye, Outer, ValuesLike)
//   - Comparison helpers (Equal, AllClose)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorext/tensor"
//	    "github.com/born-ml/tensorext/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Ones[float32](tensor.Shape{4, 4}, backend)
//	    lower, err := x.Tril(0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    mask, _ := tensor.TriuMask[bool](4, 4, 1, backend)
//	    y, _ := x.MaskedFill(mask, float32(math.Inf(-1)))
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType
// constraint:
//   - float16.Float16, float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for masks and images)
//   - bool (boolean masks)
//
// # Error Handling
//
// Every operation with a shape, split, or dtype precondition returns a
// typed error wrapped around one of the exported sentinels
// (ErrShapeMismatch, ErrInvalidShape, ErrInvalidSplit, ErrArityMismatch,
// ErrInvalidMask, ErrConflictingMask, ErrDTypeMismatch). Dispatch with
// errors.Is:
//
//	if _, err := x.Chunk2(-1); errors.Is(err, tensor.ErrInvalidSplit) {
//	    // odd dimension
//	}
//
// # Immutability
//
// Operations never write to their inputs: every result is a fresh tensor.
// The only mutating entry points are Set and the slice returned by Data.
//
// # Broadcasting
//
// Binary operations and masks follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c := a.Add(b)                                                // (3, 4)
//
// A mask may never enlarge the tensor it is applied to.
package tensor
