package optimizer

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/levy"
)

// NewFPA builds the Flower Pollination Algorithm variant (§4.6): with
// probability pa a dimension takes global pollination (a Lévy flight
// toward the leader); otherwise local pollination mixes two random
// other flowers (a biotic two-point crossover analogue).
func NewFPA() *ContinuousDriver {
	return NewContinuousDriver(fpaUpdate, reformDiscovery)
}

func fpaUpdate(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
	next := make([]float64, len(cur))
	for i := range cur {
		if rnd.FlipCoin(opts.DiscoveryProb) {
			s := levy.Step()
			next[i] = cur[i] + 0.01*s*(leader[i]-cur[i])
			continue
		}
		e := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
		f := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
		next[i] = cur[i] + rnd.Float64(0, 1)*(e[i]-f[i])
	}
	return next
}
