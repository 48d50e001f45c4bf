// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements the reference backend with:
//   - Pure Go implementation (no CGO)
//   - Float16 through Bool dtype coverage
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorext/backend/cpu"
//	    "github.com/born-ml/tensorext/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Numeric Behavior
//
// Float16 arithmetic computes through float32 and rounds once per result
// element. Softmax uses max-subtraction stabilization; a slice consisting
// entirely of -Inf normalizes to NaN, which attention masking relies on.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// allocates its own result and does not share mutable state.
package cpu
