package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDims is the largest rank an Extent can hold.
const MaxDims = 50

// Extent records the per-axis lengths of an array.
//
// It is a fixed-capacity value type: copying an Extent copies its lengths and
// nothing is allocated on the heap. A mirror of the lengths in reversed axis
// order is kept alongside the forward order for fast trailing-axis access.
//
// An Extent built from more than MaxDims lengths is not an error at
// construction time; it is marked invalid instead (NDim returns MaxDims+1)
// and must be checked with IsValid or Validate before use.
type Extent struct {
	extent    [MaxDims]int
	extentAlt [MaxDims]int
	dims      int
}

// NewExtent creates an Extent from a list of axis lengths.
//
// Returns an error wrapping ErrDomain if any length is below 1. More than
// MaxDims lengths yield an invalid Extent and a nil error.
//
// Example:
//
//	e, _ := tensor.NewExtent(2, 3, 4) // extent(2, 3, 4)
func NewExtent(dims ...int) (Extent, error) {
	return ExtentFromBuffer(dims, len(dims))
}

// ExtentOf creates an Extent from a slice of any integral type.
// It has the same semantics as NewExtent.
func ExtentOf[I Integer](vals []I) (Extent, error) {
	return ExtentFromBuffer(vals, len(vals))
}

// ExtentFromBuffer creates an Extent from the first dims entries of data.
//
// data must hold at least dims entries when dims <= MaxDims; a shorter buffer
// panics like any out-of-bounds slice access.
func ExtentFromBuffer[I Integer](data []I, dims int) (Extent, error) {
	var e Extent
	if dims < 0 {
		return e, fmt.Errorf("%w: negative rank %d", ErrInvalidExtent, dims)
	}
	if dims > MaxDims {
		e.dims = MaxDims + 1
		return e, nil
	}

	e.dims = dims
	for i := 0; i < dims; i++ {
		v := int(data[i])
		if v < 1 {
			return Extent{}, fmt.Errorf("%w: axis %d has length %v", ErrDomain, i, data[i])
		}
		e.extent[i] = v
		e.extentAlt[dims-1-i] = v
	}
	return e, nil
}

// MustExtent is like NewExtent but panics on error.
// Intended for literals whose validity is known statically.
func MustExtent(dims ...int) Extent {
	e, err := NewExtent(dims...)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return e
}

// Ones creates an n-dimensional Extent with every axis of length 1.
func Ones(n int) Extent {
	var e Extent
	if n > MaxDims {
		e.dims = MaxDims + 1
		return e
	}
	e.dims = max(n, 0)
	for i := 0; i < e.dims; i++ {
		e.extent[i] = 1
		e.extentAlt[i] = 1
	}
	return e
}

// NDim returns the number of axes.
func (e Extent) NDim() int {
	return e.dims
}

// IsValid reports whether the rank lies strictly between 0 and MaxDims.
func (e Extent) IsValid() bool {
	return e.dims > 0 && e.dims < MaxDims
}

// Validate returns an error wrapping ErrInvalidExtent if the Extent is not
// valid or if its element count does not fit in an int.
func (e Extent) Validate() error {
	if !e.IsValid() {
		return fmt.Errorf("%w: rank %d is outside (0, %d)", ErrInvalidExtent, e.dims, MaxDims)
	}
	if _, ok := e.checkedNumElements(); !ok {
		return fmt.Errorf("%w: element count of %s overflows int", ErrInvalidExtent, e)
	}
	return nil
}

// At returns the length of the given axis.
func (e Extent) At(axis int) (int, error) {
	if err := e.checkAxis(axis); err != nil {
		return 0, err
	}
	return e.extent[axis], nil
}

// Set assigns the length of the given axis and keeps the reversed mirror in sync.
func (e *Extent) Set(axis, length int) error {
	if err := e.checkAxis(axis); err != nil {
		return err
	}
	if length < 1 {
		return fmt.Errorf("%w: axis %d cannot be set to %d", ErrDomain, axis, length)
	}
	e.extent[axis] = length
	e.extentAlt[e.dims-1-axis] = length
	return nil
}

func (e Extent) checkAxis(axis int) error {
	if e.dims > MaxDims {
		return fmt.Errorf("%w: rank exceeds %d", ErrInvalidExtent, MaxDims)
	}
	if axis < 0 || axis >= e.dims {
		return fmt.Errorf("%w: index %d is out of range for extent with %d dimensions",
			ErrOutOfRange, axis, e.dims)
	}
	return nil
}

// Dim returns the length at position axis in forward order, or in reversed
// axis order when forward is false.
//
// Dim does not validate axis: positions at or beyond NDim return stale
// values and positions at or beyond MaxDims panic.
func (e Extent) Dim(axis int, forward bool) int {
	if forward {
		return e.extent[axis]
	}
	return e.extentAlt[axis]
}

// Dims returns the axis lengths as a new slice.
func (e Extent) Dims() []int {
	n := min(e.dims, MaxDims)
	out := make([]int, n)
	copy(out, e.extent[:n])
	return out
}

// NumElements returns the product of all axis lengths.
// A rank-0 Extent describes a scalar and holds one element.
//
// The product is not checked for overflow; Validate rejects extents whose
// product does not fit in an int.
func (e Extent) NumElements() int {
	n := 1
	for i := 0; i < min(e.dims, MaxDims); i++ {
		n *= e.extent[i]
	}
	return n
}

// checkedNumElements is NumElements with overflow detection.
func (e Extent) checkedNumElements() (int, bool) {
	n := 1
	for i := 0; i < min(e.dims, MaxDims); i++ {
		if n > math.MaxInt/e.extent[i] {
			return 0, false
		}
		n *= e.extent[i]
	}
	return n, true
}

// Compressed returns a copy with every length-1 axis removed.
// If the Extent holds a single element the result is extent(1), never rank 0.
func (e Extent) Compressed() Extent {
	if e.dims > MaxDims {
		return e
	}
	if e.NumElements() == 1 {
		return Ones(1)
	}

	var res Extent
	for i := 0; i < e.dims; i++ {
		if e.extent[i] != 1 {
			res.extent[res.dims] = e.extent[i]
			res.dims++
		}
	}
	res.mirror()
	return res
}

// Reshape permutes the axes in place: order[i] is the destination axis of
// source axis i.
//
// Neither the receiver nor order is validated. IsValid must hold, and order
// must be a permutation of [0, NDim); anything else leaves the Extent in an
// undefined state or panics.
func (e *Extent) Reshape(order []int) {
	var permuted [MaxDims]int
	for src, dst := range order {
		permuted[dst] = e.extent[src]
	}
	e.extent = permuted
	e.mirror()
}

// Permuted is the copying form of Reshape.
func (e Extent) Permuted(order []int) Extent {
	e.Reshape(order)
	return e
}

// Subshape returns the axes in [start, end) as a new Extent.
// The bounds are not validated.
func (e Extent) Subshape(start, end int) Extent {
	var res Extent
	res.dims = end - start
	copy(res.extent[:res.dims], e.extent[start:end])
	res.mirror()
	return res
}

// Strides returns the row-major strides, in elements, of an array with this
// Extent as its shape: the last axis has stride 1 and every other axis has the
// product of the lengths after it.
func (e Extent) Strides() Extent {
	var s Extent
	s.dims = e.dims
	if e.dims == 0 || e.dims > MaxDims {
		return s
	}

	s.extent[e.dims-1] = 1
	for i := e.dims - 2; i >= 0; i-- {
		s.extent[i] = s.extent[i+1] * e.extent[i+1]
	}
	s.mirror()
	return s
}

// Equal reports whether both extents have the same rank and axis lengths.
func (e Extent) Equal(other Extent) bool {
	if e.dims != other.dims || e.dims > MaxDims {
		return false
	}
	for i := 0; i < e.dims; i++ {
		if e.extent[i] != other.extent[i] {
			return false
		}
	}
	return true
}

// String renders the Extent as extent(d0, d1, ...).
func (e Extent) String() string {
	if e.dims > MaxDims {
		return "extent(invalid)"
	}
	var sb strings.Builder
	sb.WriteString("extent(")
	for i := 0; i < e.dims; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(e.extent[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}

// mirror rebuilds the reversed lengths from the forward ones.
func (e *Extent) mirror() {
	for i := 0; i < e.dims; i++ {
		e.extentAlt[i] = e.extent[e.dims-1-i]
	}
}
