package surf

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestArange(Te *testing.T) {
	v, err := Arange(0, 1, 0.25)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0.25, 0.5, 0.75}, v)

	v, err = Arange(-13, 5.5, 0.1)
	require.NoError(Te, err)
	assert.Len(Te, v, 185)
	assert.InDelta(Te, 5.4, v[len(v)-1], 1e-9)

	v, err = Arange(2, 1000, 1)
	require.NoError(Te, err)
	assert.Len(Te, v, 998)
	assert.Equal(Te, 999.0, v[len(v)-1])

	for _, c := range [][3]float64{{0, 1, 0}, {0, 1, -1}, {1, 0, 0.1}, {1, 1, 0.1}, {math.NaN(), 1, 0.1}, {0, math.Inf(1), 1}} {
		_, err := Arange(c[0], c[1], c[2])
		require.Error(Te, err, "range %v", c)
		assert.True(Te, errors.Is(err, ErrInvalidConfig))
	}
}

func TestArangeTooLarge(Te *testing.T) {
	for _, c := range [][3]float64{{0, 1, 1e-10}, {-1e300, 1e300, 1e-300}} {
		_, err := Arange(c[0], c[1], c[2])
		require.Error(Te, err, "range %v", c)
		assert.True(Te, errors.Is(err, ErrInvalidConfig))
		assert.NotContains(Te, err.Error(), "empty")
		assert.Contains(Te, err.Error(), "allowed")
	}
	v, err := Arange(0, MaxAxisPoints, 1)
	require.NoError(Te, err)
	assert.Len(Te, v, MaxAxisPoints)
}

func TestAxis(Te *testing.T) {
	a := Axis{Min: 0, Max: 1, Label: "O"}
	assert.Error(Te, a.Validate())
	b := a.withDefaultStep(0.5)
	assert.Equal(Te, 0.0, a.Step)
	require.NoError(Te, b.Validate())
	v, err := b.Values()
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0.5}, v)
	assert.Equal(Te, 0.1, Axis{Step: 0.1}.withDefaultStep(0.5).Step)
}

func TestGrids(Te *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{-1, 0}
	gx, gy := Grids(x, y)
	r, c := gx.Dims()
	assert.Equal(Te, 2, r)
	assert.Equal(Te, 3, c)
	for i := 0; i < r; i++ {
		assert.Equal(Te, x, mat.Row(nil, i, gx))
	}
	for j := 0; j < c; j++ {
		assert.Equal(Te, y, mat.Col(nil, j, gy))
	}

	k := ConstGrid(2, 2, 3.5)
	assert.Equal(Te, []float64{3.5, 3.5, 3.5, 3.5}, k.RawMatrix().Data)

	rg := RowGrid([]float64{1, 2}, 3)
	assert.Equal(Te, []float64{1, 1, 1, 2, 2, 2}, rg.RawMatrix().Data)

	ts := TSGrid([]float64{0.5, 0.25}, []float64{2, 8}, 2)
	assert.Equal(Te, []float64{1, 1, 2, 2}, ts.RawMatrix().Data)
}
