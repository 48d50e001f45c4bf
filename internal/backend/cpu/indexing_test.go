package cpu

import (
	"testing"

	"github.com/born-ml/tensorext/internal/tensor"
)

func rawFromBool(t *testing.T, data []bool, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Bool, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsBool(), data)
	return raw
}

func TestCPUBackend_Where(t *testing.T) {
	backend := newTestBackend()

	cond := rawFromBool(t, []bool{true, false, true, false}, tensor.Shape{4})
	x := rawFromFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{4})
	y := rawFromFloat32(t, []float32{10, 20, 30, 40}, tensor.Shape{4})

	result := backend.Where(cond, x, y)
	expected := []float32{1, 20, 3, 40}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Where = %v, want %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_WhereBroadcast(t *testing.T) {
	backend := newTestBackend()

	t.Run("ScalarBranch", func(t *testing.T) {
		// The replacement value broadcasts from a single element.
		cond := rawFromBool(t, []bool{true, false, false, true}, tensor.Shape{2, 2})
		x := rawFromFloat32(t, []float32{-1}, tensor.Shape{1})
		y := rawFromFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

		result := backend.Where(cond, x, y)
		expected := []float32{-1, 2, 3, -1}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Where = %v, want %v", result.AsFloat32(), expected)
		}
	})

	t.Run("CondRow", func(t *testing.T) {
		// A row condition applies to every row.
		cond := rawFromBool(t, []bool{true, false}, tensor.Shape{2})
		x := rawFromFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
		y := rawFromFloat32(t, []float32{0, 0, 0, 0}, tensor.Shape{2, 2})

		result := backend.Where(cond, x, y)
		expected := []float32{1, 0, 3, 0}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Where = %v, want %v", result.AsFloat32(), expected)
		}
	})

	t.Run("OutputLargerThanAll", func(t *testing.T) {
		cond := rawFromBool(t, []bool{true, false}, tensor.Shape{2, 1})
		x := rawFromFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})
		y := rawFromFloat32(t, []float32{9}, tensor.Shape{1})

		result := backend.Where(cond, x, y)
		if !result.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("Where shape = %v, want [2 3]", result.Shape())
		}
		expected := []float32{1, 2, 3, 9, 9, 9}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Where = %v, want %v", result.AsFloat32(), expected)
		}
	})
}

func TestCPUBackend_WhereInt(t *testing.T) {
	backend := newTestBackend()

	cond := rawFromBool(t, []bool{false, true}, tensor.Shape{2})
	x, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	y, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	copy(x.AsInt64(), []int64{1, 2})
	copy(y.AsInt64(), []int64{-1, -2})

	got := backend.Where(cond, x, y).AsInt64()
	if got[0] != -1 || got[1] != 2 {
		t.Errorf("Where int64 = %v, want [-1 2]", got)
	}
}
