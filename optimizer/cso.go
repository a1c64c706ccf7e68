package optimizer

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/levy"
)

// NewCSO builds the Cuckoo Search variant (§4.6): with probability pa
// a dimension is replaced by a directed perturbation between two random
// nest positions (abandoning a worse nest); otherwise it takes a Lévy
// flight toward the population leader.
func NewCSO() *ContinuousDriver {
	return NewContinuousDriver(cuckooUpdate, reformDiscovery)
}

func cuckooUpdate(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
	next := make([]float64, len(cur))
	for i := range cur {
		if rnd.FlipCoin(opts.DiscoveryProb) {
			a := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
			b := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
			next[i] = cur[i] + rnd.Float64(0, 1)*(a[i]-b[i])
			continue
		}
		s := levy.Step()
		next[i] = cur[i] + 0.01*s*(cur[i]-leader[i])
	}
	return next
}
