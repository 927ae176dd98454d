// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Numeric is the subset of DType that supports arithmetic.
type Numeric = tensor.Numeric

// Integer is a constraint for types an Extent can be built from.
type Integer = tensor.Integer

// DataType represents the element type of an array at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// MaxDims is the largest rank an Extent can hold.
const MaxDims = tensor.MaxDims

// Extent records the per-axis lengths of an array.
//
// Example:
//
//	e := tensor.MustExtent(1, 5, 1)
//	e.Compressed() // extent(5)
type Extent = tensor.Extent

// Source is the read capability a View needs from the array it borrows.
type Source[T DType] = tensor.Source[T]

// Array is an owning, contiguous, row-major N-dimensional array.
type Array[T DType] = tensor.Array[T]

// View is a read-only strided window into an existing array.
type View[T DType] = tensor.View[T]

// Errors returned by this package. Match them with errors.Is.
var (
	ErrDomain        = tensor.ErrDomain
	ErrOutOfRange    = tensor.ErrOutOfRange
	ErrInvalidExtent = tensor.ErrInvalidExtent
	ErrShapeMismatch = tensor.ErrShapeMismatch
)

// NewExtent creates an Extent from a list of axis lengths.
// See tensor.Extent for the handling of over-rank input.
func NewExtent(dims ...int) (Extent, error) {
	return tensor.NewExtent(dims...)
}

// ExtentOf creates an Extent from a slice of any integral type.
func ExtentOf[I Integer](vals []I) (Extent, error) {
	return tensor.ExtentOf(vals)
}

// ExtentFromBuffer creates an Extent from the first dims entries of data.
func ExtentFromBuffer[I Integer](data []I, dims int) (Extent, error) {
	return tensor.ExtentFromBuffer(data, dims)
}

// MustExtent is like NewExtent but panics on error.
func MustExtent(dims ...int) Extent {
	return tensor.MustExtent(dims...)
}

// Ones creates an n-dimensional Extent with every axis of length 1.
func Ones(n int) Extent {
	return tensor.Ones(n)
}

// NewArray allocates a zero-filled array of the given shape.
func NewArray[T DType](shape Extent) (*Array[T], error) {
	return tensor.NewArray[T](shape)
}

// FromSlice creates an array from a Go slice. The data is copied.
func FromSlice[T DType](data []T, shape Extent) (*Array[T], error) {
	return tensor.FromSlice(data, shape)
}

// Arange creates an array holding 0, 1, 2, ... in row-major order.
func Arange[T Numeric](shape Extent) (*Array[T], error) {
	return tensor.Arange[T](shape)
}

// NewView creates a full view over src.
func NewView[T DType](src Source[T]) (View[T], error) {
	return tensor.NewView(src)
}

// ParseDataType maps a data type name such as "float32" to its DataType.
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}
