package optimizer

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// NewRQIEA builds the real-observation quantum-inspired EA variant
// (§4.6): each dimension is observed from a qubit pair (cos θ, sin θ)
// scaled into the dimension's bound, then rotated a step toward the
// leader by the current rotation angle θ, which itself grows slowly
// across calls (the lookup-table angle schedule, simplified to a
// single shared θ rather than a per-qubit table).
func NewRQIEA() *ContinuousDriver {
	theta := 0.05
	update := func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
		next := make([]float64, len(cur))
		for i := range cur {
			amp := math.Cos(theta) * math.Cos(theta)
			if rnd.FlipCoin(0.5) {
				amp = math.Sin(theta) * math.Sin(theta)
			}
			v := amp * bounds[i]
			if leader[i] > cur[i] {
				v += theta * (leader[i] - cur[i])
			} else {
				v -= theta * (cur[i] - leader[i])
			}
			next[i] = v
		}
		if theta < 0.3 {
			theta += 0.001
		}
		return next
	}
	return NewContinuousDriver(update, reformClassic)
}
