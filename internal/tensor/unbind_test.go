package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorext/internal/backend/cpu"
	"github.com/born-ml/tensorext/internal/tensor"
)

func TestUnbind(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
	}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	rows, err := x.Unbind(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []float32{1, 2, 3}, rows[0].Data())
	assert.Equal(t, []float32{4, 5, 6}, rows[1].Data())

	cols, err := x.Unbind(-1)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.True(t, cols[0].Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float32{1, 4}, cols[0].Data())
	assert.Equal(t, []float32{3, 6}, cols[2].Data())
}

func TestUnbind_DimOutOfRange(t *testing.T) {
	backend := cpu.New()
	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)

	_, err := x.Unbind(2)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestUnbind2(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	a, b, err := x.Unbind2(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, a.Data())
	assert.Equal(t, []float32{4, 5, 6}, b.Data())

	// The dimension size must be exactly 2, not merely divisible.
	_, _, err = x.Unbind2(1)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestUnbind3(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	a, b, c, err := x.Unbind3(-1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 4}, a.Data())
	assert.Equal(t, []float32{2, 5}, b.Data())
	assert.Equal(t, []float32{3, 6}, c.Data())
}

func TestUnbind4(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)

	a, b, c, d, err := x.Unbind4(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, a.Data())
	assert.Equal(t, []int32{2}, b.Data())
	assert.Equal(t, []int32{3}, c.Data())
	assert.Equal(t, []int32{4}, d.Data())
}

func TestUnbind5(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5}, tensor.Shape{5}, backend)
	require.NoError(t, err)

	a, b, c, d, e, err := x.Unbind5(0)
	require.NoError(t, err)
	for i, part := range []*tensor.Tensor[float64, *cpu.CPUBackend]{a, b, c, d, e} {
		assert.Equal(t, 1, part.NumElements())
		assert.Equal(t, float64(i+1), part.Data()[0])
	}

	_, _, _, _, _, err = tensor.Ones[float64](tensor.Shape{4}, backend).Unbind5(0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestUnbindVec(t *testing.T) {
	backend := cpu.New()
	mk := func(v float32) *tensor.Tensor[float32, *cpu.CPUBackend] {
		return tensor.Full[float32](tensor.Shape{2}, v, backend)
	}

	a, b, err := tensor.UnbindVec2([]*tensor.Tensor[float32, *cpu.CPUBackend]{mk(1), mk(2)})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, a.Data())
	assert.Equal(t, []float32{2, 2}, b.Data())

	_, _, err = tensor.UnbindVec2([]*tensor.Tensor[float32, *cpu.CPUBackend]{mk(1)})
	assert.ErrorIs(t, err, tensor.ErrArityMismatch)

	_, _, _, err = tensor.UnbindVec3([]*tensor.Tensor[float32, *cpu.CPUBackend]{mk(1), mk(2), mk(3)})
	require.NoError(t, err)

	_, _, _, _, err = tensor.UnbindVec4([]*tensor.Tensor[float32, *cpu.CPUBackend]{mk(1), mk(2), mk(3)})
	assert.ErrorIs(t, err, tensor.ErrArityMismatch)

	_, _, _, _, _, err = tensor.UnbindVec5([]*tensor.Tensor[float32, *cpu.CPUBackend]{mk(1), mk(2), mk(3), mk(4), mk(5)})
	require.NoError(t, err)
}
