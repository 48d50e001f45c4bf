package nn

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/tensorext/internal/backend/cpu"
	"github.com/born-ml/tensorext/internal/tensor"
)

type f32Tensor = tensor.Tensor[float32, *cpu.CPUBackend]

func fromF32(t *testing.T, data []float32, shape tensor.Shape) *f32Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, cpu.New())
	require.NoError(t, err)
	return x
}

func approxF32(t *testing.T, want, got []float32, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(tol, tol)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAttention_UniformScores(t *testing.T) {
	// Identical keys make every score equal, so the weights are uniform
	// and the output is the mean of the values.
	q := fromF32(t, []float32{0, 0}, tensor.Shape{2, 1})
	k := fromF32(t, []float32{0, 0}, tensor.Shape{2, 1})
	v := fromF32(t, []float32{1, 2}, tensor.Shape{2, 1})

	out, weights, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(tensor.Shape{2, 1}))
	assert.True(t, weights.Shape().Equal(tensor.Shape{2, 2}))
	approxF32(t, []float32{0.5, 0.5, 0.5, 0.5}, weights.Data(), 1e-6)
	approxF32(t, []float32{1.5, 1.5}, out.Data(), 1e-6)
}

func TestAttention_WorkedExample(t *testing.T) {
	// Lq=1, Lk=2, E=2 with orthonormal keys: the scores equal q itself.
	// softmax([1, 2]) = [0.26894, 0.73106].
	q := fromF32(t, []float32{1, 2}, tensor.Shape{1, 2})
	k := fromF32(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})
	v := fromF32(t, []float32{10, 20}, tensor.Shape{2, 1})

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Scale: 1})
	require.NoError(t, err)

	approxF32(t, []float32{0.26894, 0.73106}, weights.Data(), 1e-4)
	approxF32(t, []float32{17.3106}, out.Data(), 1e-3)
}

func TestAttention_DefaultScale(t *testing.T) {
	// With E=4 the default scale is 1/2. Scores before softmax are
	// scale * q·k; pinning Scale to 0.5 must match the default.
	q := fromF32(t, []float32{1, 1, 1, 1}, tensor.Shape{1, 4})
	k := fromF32(t, []float32{1, 0, 0, 0, 0, 2, 0, 0}, tensor.Shape{2, 4})
	v := fromF32(t, []float32{1, 0}, tensor.Shape{2, 1})

	defOut, defW, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
	require.NoError(t, err)

	pinOut, pinW, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Scale: 0.5})
	require.NoError(t, err)

	assert.True(t, defW.Equal(pinW))
	assert.True(t, defOut.Equal(pinOut))

	// And an explicit different scale changes the result.
	_, otherW, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Scale: 2})
	require.NoError(t, err)
	assert.False(t, defW.Equal(otherW))
}

func TestAttention_Causal(t *testing.T) {
	// Identical keys again, so the surviving weights in each row are
	// uniform over the visible prefix.
	q := fromF32(t, []float32{0, 0, 0}, tensor.Shape{3, 1})
	k := fromF32(t, []float32{0, 0, 0}, tensor.Shape{3, 1})
	v := fromF32(t, []float32{3, 6, 9}, tensor.Shape{3, 1})

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{IsCausal: true})
	require.NoError(t, err)

	approxF32(t, []float32{
		1, 0, 0,
		0.5, 0.5, 0,
		1.0 / 3, 1.0 / 3, 1.0 / 3,
	}, weights.Data(), 1e-5)
	approxF32(t, []float32{3, 4.5, 6}, out.Data(), 1e-5)

	// Every weight strictly above the diagonal is exactly zero, not
	// merely small: exp(-Inf) underflows to 0 before normalization.
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			assert.Zero(t, weights.At(i, j))
		}
	}
}

func TestAttention_BoolMaskMatchesAdditiveMask(t *testing.T) {
	backend := cpu.New()
	q := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	k := fromF32(t, []float32{0.5, 1, -1, 0.25}, tensor.Shape{2, 2})
	v := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	boolMask, err := tensor.FromSlice([]bool{
		true, false,
		true, true,
	}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	ninf := float32(math.Inf(-1))
	addMask := fromF32(t, []float32{
		0, ninf,
		0, 0,
	}, tensor.Shape{2, 2})

	boolOut, boolW, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{BoolMask: boolMask})
	require.NoError(t, err)

	addOut, addW, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Mask: addMask})
	require.NoError(t, err)

	assert.True(t, boolW.Equal(addW))
	assert.True(t, boolOut.Equal(addOut))
	assert.Zero(t, boolW.At(0, 1))
}

func TestAttention_AdditiveBias(t *testing.T) {
	// A finite additive mask biases rather than excludes.
	q := fromF32(t, []float32{0}, tensor.Shape{1, 1})
	k := fromF32(t, []float32{0, 0}, tensor.Shape{2, 1})
	v := fromF32(t, []float32{0, 1}, tensor.Shape{2, 1})

	bias := fromF32(t, []float32{0, float32(math.Log(3))}, tensor.Shape{1, 2})

	_, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Mask: bias})
	require.NoError(t, err)

	// softmax([0, ln 3]) = [0.25, 0.75].
	approxF32(t, []float32{0.25, 0.75}, weights.Data(), 1e-5)
}

func TestAttention_FullyExcludedRowIsNaN(t *testing.T) {
	backend := cpu.New()
	q := fromF32(t, []float32{0, 0}, tensor.Shape{2, 1})
	k := fromF32(t, []float32{0, 0}, tensor.Shape{2, 1})
	v := fromF32(t, []float32{1, 2}, tensor.Shape{2, 1})

	// Row 0 keeps nothing.
	mask, err := tensor.FromSlice([]bool{
		false, false,
		true, true,
	}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{BoolMask: mask})
	require.NoError(t, err)

	assert.True(t, math.IsNaN(float64(weights.At(0, 0))))
	assert.True(t, math.IsNaN(float64(weights.At(0, 1))))
	assert.True(t, math.IsNaN(float64(out.At(0, 0))))

	// Row 1 is unaffected.
	approxF32(t, []float32{0.5, 0.5}, []float32{weights.At(1, 0), weights.At(1, 1)}, 1e-6)
}

func TestAttention_Batched(t *testing.T) {
	// Two batches with different values; each batch attends independently.
	q := fromF32(t, []float32{0, 0, 0, 0}, tensor.Shape{2, 2, 1})
	k := fromF32(t, []float32{0, 0, 0, 0}, tensor.Shape{2, 2, 1})
	v := fromF32(t, []float32{1, 3, 10, 30}, tensor.Shape{2, 2, 1})

	out, _, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(tensor.Shape{2, 2, 1}))
	approxF32(t, []float32{2, 2, 20, 20}, out.Data(), 1e-5)
}

func TestAttention_BatchBroadcast(t *testing.T) {
	// Keys and values with batch 1 broadcast across a batch-2 query.
	q := fromF32(t, []float32{1, 2, 1, 2}, tensor.Shape{2, 1, 2})
	k := fromF32(t, []float32{1, 0, 0, 1}, tensor.Shape{1, 2, 2})
	v := fromF32(t, []float32{10, 20}, tensor.Shape{1, 2, 1})

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Scale: 1})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(tensor.Shape{2, 1, 1}))
	assert.True(t, weights.Shape().Equal(tensor.Shape{2, 1, 2}))

	// Both batches see the same operands, so they agree.
	assert.InDelta(t, out.At(0, 0, 0), out.At(1, 0, 0), 1e-6)
	approxF32(t, []float32{17.3106}, []float32{out.At(0, 0, 0)}, 1e-3)
}

func TestAttention_FourD(t *testing.T) {
	// The usual [batch, heads, seq, dim] layout.
	backend := cpu.New()
	q := tensor.Ones[float32](tensor.Shape{2, 3, 4, 8}, backend)
	k := tensor.Ones[float32](tensor.Shape{2, 3, 4, 8}, backend)
	v := tensor.Ones[float32](tensor.Shape{2, 3, 4, 5}, backend)

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float32, *cpu.CPUBackend]{IsCausal: true})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(tensor.Shape{2, 3, 4, 5}))
	assert.True(t, weights.Shape().Equal(tensor.Shape{2, 3, 4, 4}))

	// All-ones values make every output element 1 regardless of weights.
	for _, x := range out.Data() {
		assert.InDelta(t, 1.0, x, 1e-5)
	}
}

func TestAttention_ConflictingMasks(t *testing.T) {
	backend := cpu.New()
	q := fromF32(t, []float32{0}, tensor.Shape{1, 1})
	boolMask := tensor.Ones[bool](tensor.Shape{1, 1}, backend)
	addMask := tensor.Zeros[float32](tensor.Shape{1, 1}, backend)

	cases := []AttentionOptions[float32, *cpu.CPUBackend]{
		{IsCausal: true, BoolMask: boolMask},
		{IsCausal: true, Mask: addMask},
		{Mask: addMask, BoolMask: boolMask},
	}
	for _, opts := range cases {
		_, _, err := ScaledDotProductAttention(q, q, q, opts)
		assert.ErrorIs(t, err, tensor.ErrConflictingMask)
	}
}

func TestAttention_ShapeErrors(t *testing.T) {
	backend := cpu.New()

	t.Run("RankTooLow", func(t *testing.T) {
		v1 := tensor.Ones[float32](tensor.Shape{3}, backend)
		_, _, err := ScaledDotProductAttention(v1, v1, v1, AttentionOptions[float32, *cpu.CPUBackend]{})
		assert.ErrorIs(t, err, tensor.ErrInvalidShape)
	})

	t.Run("RankMismatch", func(t *testing.T) {
		q := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
		k := tensor.Ones[float32](tensor.Shape{1, 2, 2}, backend)
		_, _, err := ScaledDotProductAttention(q, k, k, AttentionOptions[float32, *cpu.CPUBackend]{})
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	})

	t.Run("EmbeddingMismatch", func(t *testing.T) {
		q := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
		k := tensor.Ones[float32](tensor.Shape{2, 4}, backend)
		v := tensor.Ones[float32](tensor.Shape{2, 1}, backend)
		_, _, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	})

	t.Run("KeyLengthMismatch", func(t *testing.T) {
		q := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
		k := tensor.Ones[float32](tensor.Shape{4, 3}, backend)
		v := tensor.Ones[float32](tensor.Shape{5, 1}, backend)
		_, _, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	})

	t.Run("BatchNotBroadcastable", func(t *testing.T) {
		q := tensor.Ones[float32](tensor.Shape{2, 2, 3}, backend)
		k := tensor.Ones[float32](tensor.Shape{3, 2, 3}, backend)
		v := tensor.Ones[float32](tensor.Shape{3, 2, 1}, backend)
		_, _, err := ScaledDotProductAttention(q, k, v, AttentionOptions[float32, *cpu.CPUBackend]{})
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	})
}

func TestAttention_InvalidMaskShape(t *testing.T) {
	backend := cpu.New()
	q := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	v := tensor.Ones[float32](tensor.Shape{2, 1}, backend)

	boolMask := tensor.Ones[bool](tensor.Shape{5, 5}, backend)
	_, _, err := ScaledDotProductAttention(q, q, v,
		AttentionOptions[float32, *cpu.CPUBackend]{BoolMask: boolMask})
	assert.ErrorIs(t, err, tensor.ErrInvalidMask)

	addMask := tensor.Zeros[float32](tensor.Shape{3, 3}, backend)
	_, _, err = ScaledDotProductAttention(q, q, v,
		AttentionOptions[float32, *cpu.CPUBackend]{Mask: addMask})
	assert.ErrorIs(t, err, tensor.ErrInvalidMask)
}

func TestAttention_InvalidDropout(t *testing.T) {
	q := fromF32(t, []float32{0}, tensor.Shape{1, 1})

	_, _, err := ScaledDotProductAttention(q, q, q,
		AttentionOptions[float32, *cpu.CPUBackend]{DropoutP: 1})
	assert.Error(t, err)

	_, _, err = ScaledDotProductAttention(q, q, q,
		AttentionOptions[float32, *cpu.CPUBackend]{DropoutP: -0.1})
	assert.Error(t, err)

	// Valid probabilities pass (and are a no-op at inference).
	out1, _, err := ScaledDotProductAttention(q, q, q,
		AttentionOptions[float32, *cpu.CPUBackend]{DropoutP: 0.5})
	require.NoError(t, err)
	out2, _, err := ScaledDotProductAttention(q, q, q, AttentionOptions[float32, *cpu.CPUBackend]{})
	require.NoError(t, err)
	assert.True(t, out1.Equal(out2))
}

func TestAttention_Float64(t *testing.T) {
	backend := cpu.New()
	q, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)
	k, err := tensor.FromSlice([]float64{1, 0, 0, 1}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	v, err := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	out, weights, err := ScaledDotProductAttention(q, k, v,
		AttentionOptions[float64, *cpu.CPUBackend]{Scale: 1})
	require.NoError(t, err)

	assert.InDelta(t, 1/(1+math.E), weights.At(0, 0), 1e-12)
	assert.InDelta(t, math.E/(1+math.E), weights.At(0, 1), 1e-12)
	assert.InDelta(t, 10*weights.At(0, 0)+20*weights.At(0, 1), out.At(0, 0), 1e-12)
}

func TestAttention_Float16(t *testing.T) {
	backend := cpu.New()
	q16 := tensor.Zeros[float32](tensor.Shape{2, 1}, backend).Half()
	v32, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	v16 := v32.Half()

	out, weights, err := ScaledDotProductAttention(q16, q16, v16,
		AttentionOptions[float16.Float16, *cpu.CPUBackend]{})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, float64(weights.At(0, 0).Float32()), 1e-2)
	assert.InDelta(t, 1.5, float64(out.At(0, 0).Float32()), 1e-2)
}

func TestCausalMask(t *testing.T) {
	backend := cpu.New()

	m, err := CausalMask[*cpu.CPUBackend](3, 3, backend)
	require.NoError(t, err)
	assert.Equal(t, []bool{
		true, false, false,
		true, true, false,
		true, true, true,
	}, m.Data())

	// Rectangular masks for cross-length attention.
	wide, err := CausalMask[*cpu.CPUBackend](2, 4, backend)
	require.NoError(t, err)
	assert.Equal(t, []bool{
		true, false, false, false,
		true, true, false, false,
	}, wide.Data())
}
