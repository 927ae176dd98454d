package tensor

import "fmt"

// Source is the read capability a View needs from the array it borrows.
type Source[T DType] interface {
	// Shape returns the array's own extent.
	Shape() Extent
	// Scalar returns the element at a flat storage position.
	Scalar(index int) T
}

// Array is an owning, contiguous, row-major N-dimensional array.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.MustExtent(2, 3))
//	row, _ := a.View().Index(1) // [4 5 6], no copy
type Array[T DType] struct {
	storage []T
	shape   Extent
	dtype   DataType
}

var _ Source[float32] = (*Array[float32])(nil)

// NewArray allocates a zero-filled array of the given shape.
func NewArray[T DType](shape Extent) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array[T]{
		storage: make([]T, shape.NumElements()),
		shape:   shape,
		dtype:   inferDataType[T](),
	}, nil
}

// FromSlice creates an array of the given shape from a Go slice.
// The slice is copied into the array's storage.
func FromSlice[T DType](data []T, shape Extent) (*Array[T], error) {
	a, err := NewArray[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.storage) {
		return nil, fmt.Errorf("%w: %s requires %d elements, but got %d",
			ErrShapeMismatch, shape, len(a.storage), len(data))
	}
	copy(a.storage, data)
	return a, nil
}

// Arange creates an array of the given shape holding 0, 1, 2, ... in
// row-major order.
func Arange[T Numeric](shape Extent) (*Array[T], error) {
	a, err := NewArray[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.storage {
		a.storage[i] = T(i)
	}
	return a, nil
}

// Shape returns the array's extent.
func (a *Array[T]) Shape() Extent {
	return a.shape
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return a.shape.NDim()
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return len(a.storage)
}

// ByteSize returns the storage size in bytes.
func (a *Array[T]) ByteSize() int {
	return len(a.storage) * a.dtype.Size()
}

// DType returns the element data type.
func (a *Array[T]) DType() DataType {
	return a.dtype
}

// Scalar returns the element at a flat storage position.
func (a *Array[T]) Scalar(index int) T {
	return a.storage[index]
}

// Storage returns the backing slice.
//
// WARNING: Direct access to underlying memory. Views over this array observe
// any write made through it.
func (a *Array[T]) Storage() []T {
	return a.storage
}

// View returns a full view over the array.
func (a *Array[T]) View() View[T] {
	// The array's shape was validated at construction.
	v, _ := NewView[T](a)
	return v
}

// Equal reports whether both arrays have the same shape and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, x := range a.storage {
		if other.storage[i] != x {
			return false
		}
	}
	return true
}

// String renders the array contents as nested brackets.
func (a *Array[T]) String() string {
	return formatArray(a.storage, a.shape)
}
