package optimizer

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/levy"
)

// NewDLBA builds the bat-algorithm variant (§4.6): frequency-scaled
// velocity toward the leader, a Lévy local search around the leader
// gated by the pulse rate, and a differential-mutation nudge from two
// random other bats. Loudness decays by 0.9 each call, echoing the
// standard bat-algorithm schedule.
func NewDLBA() *ContinuousDriver {
	loudness := 1.0
	rate := 0.5
	update := func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
		freq := rnd.Float64(0, 1)
		next := make([]float64, len(cur))
		for i := range cur {
			next[i] = cur[i] + (cur[i]-leader[i])*freq
		}
		if rnd.Float64(0, 1) > rate {
			for i := range next {
				next[i] = leader[i] + loudness*0.01*levy.Step()
			}
		}
		a := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
		b := all[rnd.IntGetUniqueN(0, len(all), 1)[0]]
		for i := range next {
			next[i] += 0.1 * rnd.Float64(0, 1) * (a[i] - b[i])
		}
		loudness *= 0.9
		if rate < 0.95 {
			rate += 0.01 * (1 - rate)
		}
		return next
	}
	return NewContinuousDriver(update, reformDiscovery)
}
