package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorext/internal/backend/cpu"
	"github.com/born-ml/tensorext/internal/tensor"
)

func TestTrilMask_Basic(t *testing.T) {
	backend := cpu.New()

	m, err := tensor.TrilMask[uint8](3, 3, 0, backend)
	require.NoError(t, err)

	want := []uint8{
		1, 0, 0,
		1, 1, 0,
		1, 1, 1,
	}
	assert.Equal(t, want, m.Data())
}

func TestTrilMask_Diagonals(t *testing.T) {
	backend := cpu.New()

	t.Run("positive offset", func(t *testing.T) {
		m, err := tensor.TrilMask[uint8](3, 3, 1, backend)
		require.NoError(t, err)
		assert.Equal(t, []uint8{
			1, 1, 0,
			1, 1, 1,
			1, 1, 1,
		}, m.Data())
	})

	t.Run("negative offset", func(t *testing.T) {
		m, err := tensor.TrilMask[uint8](3, 3, -1, backend)
		require.NoError(t, err)
		assert.Equal(t, []uint8{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
		}, m.Data())
	})

	// Out-of-range offsets degenerate instead of failing.
	t.Run("all ones", func(t *testing.T) {
		m, err := tensor.TrilMask[uint8](3, 3, 10, backend)
		require.NoError(t, err)
		assert.Equal(t, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}, m.Data())
	})

	t.Run("all zeros", func(t *testing.T) {
		m, err := tensor.TrilMask[uint8](3, 3, -10, backend)
		require.NoError(t, err)
		assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0}, m.Data())
	})
}

func TestTriuMask_Basic(t *testing.T) {
	backend := cpu.New()

	m, err := tensor.TriuMask[uint8](3, 3, 0, backend)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		1, 1, 1,
		0, 1, 1,
		0, 0, 1,
	}, m.Data())

	m, err = tensor.TriuMask[uint8](3, 3, 1, backend)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		0, 1, 1,
		0, 0, 1,
		0, 0, 0,
	}, m.Data())
}

func TestTriangularMask_Rectangular(t *testing.T) {
	backend := cpu.New()

	m, err := tensor.TrilMask[bool](2, 4, 0, backend)
	require.NoError(t, err)
	assert.Equal(t, []bool{
		true, false, false, false,
		true, true, false, false,
	}, m.Data())
}

func TestTriangularMask_BoolAndFloat(t *testing.T) {
	backend := cpu.New()

	b, err := tensor.TrilMask[bool](2, 2, 0, backend)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, b.Data())

	f, err := tensor.TrilMask[float32](2, 2, 0, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 1, 1}, f.Data())
}

func TestTriangularMask_InvalidDims(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.TrilMask[float32](0, 3, 0, backend)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = tensor.TriuMask[float32](3, -1, 0, backend)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestTril(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, tensor.Shape{3, 3}, backend)
	require.NoError(t, err)

	lower, err := x.Tril(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		1, 0, 0,
		4, 5, 0,
		7, 8, 9,
	}, lower.Data())

	// Input stays intact.
	assert.Equal(t, float32(2), x.At(0, 1))

	wide, err := x.Tril(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		1, 2, 0,
		4, 5, 6,
		7, 8, 9,
	}, wide.Data())
}

func TestTriu(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, tensor.Shape{3, 3}, backend)
	require.NoError(t, err)

	upper, err := x.Triu(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		1, 2, 3,
		0, 5, 6,
		0, 0, 9,
	}, upper.Data())

	strict, err := x.Triu(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		0, 2, 3,
		0, 0, 6,
		0, 0, 0,
	}, strict.Data())
}

// Tril(x, d) and Triu(x, d+1) partition the matrix, so their sum
// reconstructs it exactly.
func TestTrilTriu_Reconstruction(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, tensor.Shape{3, 4}, backend)
	require.NoError(t, err)

	for _, d := range []int{-3, -1, 0, 1, 3} {
		lower, err := x.Tril(d)
		require.NoError(t, err)
		upper, err := x.Triu(d + 1)
		require.NoError(t, err)
		assert.True(t, x.Equal(lower.Add(upper)), "diagonal %d", d)
	}
}

func TestTriangular_Batched(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	}, tensor.Shape{2, 2, 2}, backend)
	require.NoError(t, err)

	lower, err := x.Tril(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		1, 0,
		3, 4,

		5, 0,
		7, 8,
	}, lower.Data())
}

func TestTriangular_RankTooLow(t *testing.T) {
	backend := cpu.New()
	v, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	_, err = v.Tril(0)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
	_, err = v.Triu(0)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}
