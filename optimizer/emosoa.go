package optimizer

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// NewEMoSOA builds the seagull optimization variant (§4.6): exploitation
// spiral around the population leader, with the spiral radius decaying
// geometrically across calls (standing in for "decaying in generation").
func NewEMoSOA() *ContinuousDriver {
	radius := 2.0
	update := func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
		theta := rnd.Float64(0, 1) * 2 * math.Pi
		next := make([]float64, len(cur))
		for i := range cur {
			d := math.Abs(leader[i] - cur[i])
			next[i] = leader[i] + radius*d*math.Cos(theta)
		}
		if radius > 0.1 {
			radius *= 0.995
		}
		return next
	}
	return NewContinuousDriver(update, reformClassic)
}
