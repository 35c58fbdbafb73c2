package matutils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	v := mat.NewVecDense(4, []float64{0.1, 0.7, 0.7, 0.3})

	// First index wins ties
	if idx := MaxVec(v); idx != 1 {
		t.Errorf("max index = %d, want 1", idx)
	}

	v = mat.NewVecDense(3, []float64{-1, -2, -3})
	if idx := MaxVec(v); idx != 0 {
		t.Errorf("max index = %d, want 0", idx)
	}
}

func TestVecAllEqual(t *testing.T) {
	if !VecAllEqual(mat.NewVecDense(3, []float64{0, 0, 0})) {
		t.Error("zero vector should be all equal")
	}
	if !VecAllEqual(mat.NewVecDense(3, []float64{2.5, 2.5, 2.5})) {
		t.Error("constant vector should be all equal")
	}
	if VecAllEqual(mat.NewVecDense(3, []float64{0, 0, 1e-12})) {
		t.Error("vector with a distinct entry should not be all equal")
	}
}
