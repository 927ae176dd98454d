// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, zero-copy views over N-dimensional arrays.
//
// # Overview
//
// The package is built from three pieces:
//   - Extent: a fixed-capacity shape descriptor (up to MaxDims axes)
//   - Array[T]: an owning, contiguous, row-major array
//   - View[T]: a read-only window into an array with its own shape,
//     strides and offset
//
// # Basic Usage
//
//	a, _ := tensor.Arange[float32](tensor.MustExtent(2, 3, 4))
//
//	// Peel leading axes without copying.
//	plane, _ := a.View().Index(1) // extent(3, 4), offset 12
//	row, _ := plane.Index(2)      // extent(4), offset 20
//
//	// Materialize into a new dense array.
//	dense := row.Eval() // [20 21 22 23]
//
// # Lifetimes
//
// A View borrows its source array. The array must outlive every View taken
// from it, and must not be written to while Views are being read from other
// goroutines.
//
// # Unchecked Operations
//
// View.Scalar and Extent.Reshape do not validate their arguments. They are
// meant for inner loops; View.At and Extent.At are the checked forms.
package tensor
