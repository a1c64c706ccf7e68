package optimizer

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// NewGAQPSO builds the Quantum-behaved PSO variant (§4.6): a Gaussian
// local attractor p = φ·pBest + (1−φ)·gBest (pBest approximated by the
// individual's own current position, gBest by the population leader),
// perturbed around the population mean position mBest by a
// Delta-potential-well draw. Step scale α linearly decays from 0.96 to
// 0.5 over the run.
func NewGAQPSO() *ContinuousDriver {
	alpha := 0.96
	update := func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64 {
		k := len(cur)
		mBest := make([]float64, k)
		for _, p := range all {
			for i := range p {
				mBest[i] += p[i]
			}
		}
		for i := range mBest {
			mBest[i] /= float64(len(all))
		}

		phi := rnd.Float64(0, 1)
		next := make([]float64, k)
		for i := range cur {
			p := phi*cur[i] + (1-phi)*leader[i]
			u := rnd.Float64(0, 1)
			if u < 1e-12 {
				u = 1e-12
			}
			sign := 1.0
			if rnd.FlipCoin(0.5) {
				sign = -1
			}
			next[i] = p + sign*alpha*math.Abs(mBest[i]-cur[i])*math.Log(1/u)
		}
		// update runs once per individual per generation
		if alpha > 0.5 && opts.MaxGenerations > 0 && opts.PopulationSize > 0 {
			alpha -= (0.96 - 0.5) / float64(opts.MaxGenerations*opts.PopulationSize)
		}
		return next
	}
	return NewContinuousDriver(update, reformClassic)
}
