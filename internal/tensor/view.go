package tensor

import "fmt"

// View is a read-only strided window into an existing array.
//
// A View records a shape, row-major strides in elements, and the flat storage
// offset where it begins. It borrows its source: the source must outlive the
// View, and a View never writes to it. Views are plain values and may be read
// from multiple goroutines as long as the source is not mutated concurrently.
//
// Example:
//
//	a, _ := tensor.Arange[float32](tensor.MustExtent(2, 3))
//	row, _ := a.View().Index(1) // shape extent(3), offset 3
//	dense := row.Eval()         // [3 4 5]
type View[T DType] struct {
	src    Source[T]
	shape  Extent
	stride Extent
	offset int
}

// NewView creates a full view over src.
// The row-major strides of src's shape are computed once, here.
func NewView[T DType](src Source[T]) (View[T], error) {
	shape := src.Shape()
	if err := shape.Validate(); err != nil {
		return View[T]{}, fmt.Errorf("view: %w", err)
	}
	return View[T]{
		src:    src,
		shape:  shape,
		stride: shape.Strides(),
	}, nil
}

// Shape returns the view's extent.
func (v View[T]) Shape() Extent {
	return v.shape
}

// Stride returns the per-axis strides, in elements, into the source storage.
func (v View[T]) Stride() Extent {
	return v.stride
}

// Offset returns the flat source position the view begins at.
func (v View[T]) Offset() int {
	return v.offset
}

// NDim returns the number of axes.
func (v View[T]) NDim() int {
	return v.shape.NDim()
}

// NumElements returns the number of elements the view covers.
func (v View[T]) NumElements() int {
	return v.shape.NumElements()
}

// Index peels the leading axis and returns the sub-view at position i.
//
// The result shares the source, drops axis 0 from the shape and strides, and
// starts at Offset() + i*Stride()[0]. Indexing a 1-D view yields a
// single-element view of extent(1) with unit stride.
func (v View[T]) Index(i int) (View[T], error) {
	n := v.shape.NDim()
	if n == 0 {
		return View[T]{}, fmt.Errorf("%w: cannot index a rank-0 view", ErrOutOfRange)
	}
	lead := v.shape.extent[0]
	if i < 0 || i >= lead {
		return View[T]{}, fmt.Errorf("%w: index %d out of bounds with leading dimension=%d",
			ErrOutOfRange, i, lead)
	}

	sub := View[T]{
		src:    v.src,
		offset: v.offset + i*v.stride.extent[0],
	}
	if n == 1 {
		sub.shape = Ones(1)
		sub.stride = Ones(1)
	} else {
		sub.shape = v.shape.Subshape(1, n)
		sub.stride = v.stride.Subshape(1, n)
	}
	return sub, nil
}

// At returns the element at the given multi-index, checking every coordinate.
func (v View[T]) At(coords ...int) (T, error) {
	var zero T
	n := v.shape.NDim()
	if len(coords) != n {
		return zero, fmt.Errorf("%w: expected %d indices, got %d", ErrShapeMismatch, n, len(coords))
	}

	pos := v.offset
	for axis, c := range coords {
		if c < 0 || c >= v.shape.extent[axis] {
			return zero, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)",
				ErrOutOfRange, c, axis, v.shape.extent[axis])
		}
		pos += c * v.stride.extent[axis]
	}
	return v.src.Scalar(pos), nil
}

// Scalar returns the element at a flat row-major index into the view, as if
// the view were contiguous.
//
// The index is not validated: it must lie in [0, NumElements()). This is the
// hot path of element access; use At for checked access.
func (v View[T]) Scalar(index int) T {
	n := v.shape.dims
	if n == 0 {
		return v.src.Scalar(v.offset)
	}

	pos := v.offset
	for axis := n - 1; axis >= 0; axis-- {
		d := v.shape.extent[axis]
		pos += (index % d) * v.stride.extent[axis]
		index /= d
	}
	return v.src.Scalar(pos)
}

// Eval materializes the view into a new dense array of the view's shape.
//
// The source is walked with an odometer: the last coordinate advances
// fastest, and an axis that wraps to 0 carries into the axis before it while
// the running source position is rewound by (length-1)*stride.
func (v View[T]) Eval() *Array[T] {
	res := &Array[T]{
		storage: make([]T, v.shape.NumElements()),
		shape:   v.shape,
		dtype:   inferDataType[T](),
	}

	var coord [MaxDims]int
	n := v.shape.dims
	dst := res.storage
	p, d := 0, 0
	for {
		dst[d] = v.src.Scalar(v.offset + p)
		d++

		axis := n - 1
		for ; axis >= 0; axis-- {
			coord[axis]++
			if coord[axis] == v.shape.extent[axis] {
				coord[axis] = 0
				p -= (v.shape.extent[axis] - 1) * v.stride.extent[axis]
			} else {
				p += v.stride.extent[axis]
				break
			}
		}
		if axis < 0 {
			return res
		}
	}
}

// String renders the view's contents as nested brackets.
func (v View[T]) String() string {
	return v.Eval().String()
}
