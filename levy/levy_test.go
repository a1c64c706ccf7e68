package levy_test

import (
	"math"
	"testing"

	"github.com/cpmech/gaschedule/levy"
)

func TestStepIsFinite(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := levy.Step()
		if math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("Step produced non-finite value %v at iteration %d", s, i)
		}
	}
}

func TestFlightWritesEveryDimension(t *testing.T) {
	x := []float64{1, 2, 3}
	best := []float64{0, 0, 0}
	out := make([]float64, len(x))

	levy.Flight(out, x, best, 0.1)

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("out[%d] = %v, want finite", i, v)
		}
	}
}

func TestFlightMayAliasInput(t *testing.T) {
	x := []float64{1, 2, 3}
	best := []float64{0, 0, 0}

	levy.Flight(x, x, best, 0.1)

	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("x[%d] = %v, want finite", i, v)
		}
	}
}
