// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndview/tensor"
)

// TestPublicAPI walks the documented usage through the public package.
func TestPublicAPI(t *testing.T) {
	a, err := tensor.Arange[float32](tensor.MustExtent(2, 3, 4))
	require.NoError(t, err)

	plane, err := a.View().Index(1)
	require.NoError(t, err)
	assert.Equal(t, "extent(3, 4)", plane.Shape().String())
	assert.Equal(t, 12, plane.Offset())

	row, err := plane.Index(2)
	require.NoError(t, err)
	assert.Equal(t, 20, row.Offset())
	assert.Equal(t, []float32{20, 21, 22, 23}, row.Eval().Storage())
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.NewExtent(3, 0)
	assert.True(t, errors.Is(err, tensor.ErrDomain))

	a, err := tensor.FromSlice([]int64{1, 2}, tensor.MustExtent(2))
	require.NoError(t, err)

	_, err = a.View().Index(5)
	assert.True(t, errors.Is(err, tensor.ErrOutOfRange))

	_, err = tensor.NewArray[int32](tensor.Ones(tensor.MaxDims + 1))
	assert.True(t, errors.Is(err, tensor.ErrInvalidExtent))
}

// sparseRow is a Source outside the package: it reports a shape and serves
// elements from a map.
type sparseRow struct {
	n    int
	vals map[int]float64
}

func (s sparseRow) Shape() tensor.Extent { return tensor.MustExtent(s.n) }
func (s sparseRow) Scalar(i int) float64 { return s.vals[i] }

func TestViewOverCustomSource(t *testing.T) {
	src := sparseRow{n: 4, vals: map[int]float64{1: 2.5, 3: -1}}

	v, err := tensor.NewView[float64](src)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2.5, 0, -1}, v.Eval().Storage())
	assert.Equal(t, tensor.Float64, v.Eval().DType())
}

func TestExtentConstructors(t *testing.T) {
	a, err := tensor.ExtentOf([]uint16{4, 5})
	require.NoError(t, err)

	b, err := tensor.ExtentFromBuffer([]int{4, 5, 6}, 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "extent(1, 1)", tensor.Ones(2).String())

	dt, ok := tensor.ParseDataType("int32")
	assert.True(t, ok)
	assert.Equal(t, tensor.Int32, dt)
}
