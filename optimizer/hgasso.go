package optimizer

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/rnd"
)

// NewHGASSO builds the hybrid sperm-swarm/genetic-algorithm variant
// (§4.6): a sperm-motility velocity step adds, per dimension, the offset
// to the leader scaled by log10 of a uniform draw (the characteristic
// HGASSO coefficient, always negative), followed by a genetic blend with a random other
// individual and an occasional small mutation jitter. The jitter itself
// draws from the top-level math/rand generator rather than gosl/rnd:
// it is the one Gaussian-variate need in this concern, and no
// gosl/rnd primitive for it was found anywhere in the retrieved pack
// (see levy.Step's equivalent note).
func NewHGASSO() *ContinuousDriver {
	update := func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
		next := make([]float64, len(cur))
		for i := range cur {
			coef := math.Log10(rnd.Float64(0, 1)*0.9 + 0.1) // in [-1, 0)
			next[i] = cur[i] + coef*(leader[i]-cur[i])
		}
		if rnd.FlipCoin(opts.CrossoverProbPct / 100) {
			other := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
			for i := range next {
				next[i] = (next[i] + other[i]) / 2
			}
		}
		if rnd.FlipCoin(opts.MutationProbPct / 100) {
			i := rnd.IntGetUniqueN(0, len(next), 1)[0]
			next[i] += rand.NormFloat64() * bounds[i] * 0.05
		}
		return next
	}
	return NewContinuousDriver(update, reformClassic)
}
