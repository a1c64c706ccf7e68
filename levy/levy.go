// Package levy implements the Lévy-flight step generator shared by the
// continuous-position optimizer variants (CSO, FPA, DLBA): Mantegna's
// algorithm for drawing a step from a symmetric Lévy-stable
// distribution without evaluating the stable density directly.
package levy

import (
	"math"
	"math/rand"
)

// Beta is the stability index used throughout this module's Lévy-flight
// variants (§4.6).
const Beta = 1.5

// sigmaU is Mantegna's scale factor for the numerator draw, derived once
// from Beta via the Gamma function:
//
//	σ_u = ( Γ(1+β)sin(πβ/2) / (Γ((1+β)/2)·β·2^((β−1)/2)) )^(1/β)
func sigmaU(beta float64) float64 {
	num := math.Gamma(1+beta) * math.Sin(math.Pi*beta/2)
	den := math.Gamma((1+beta)/2) * beta * math.Pow(2, (beta-1)/2)
	return math.Pow(num/den, 1/beta)
}

var sigma = sigmaU(Beta)

// Step draws one Lévy-flight step scale S = u/|v|^(1/β) via Mantegna's
// algorithm, with u ~ N(0, σ_u) and v ~ N(0, 1). Drawn from the
// top-level math/rand generator rather than an injected source: this is
// the one primitive in this concern with no gosl/rnd equivalent
// anywhere in the retrieved pack (gosl/rnd's observed surface is
// uniform/coin-flip/shuffle, never a normal-variate draw), so it stays
// on the standard library's own global generator, the same
// no-instance-threading shape gosl/rnd itself uses for everything else.
func Step() float64 {
	u := rand.NormFloat64() * sigma
	v := rand.NormFloat64()
	if v == 0 {
		v = 1e-12
	}
	return u / math.Pow(math.Abs(v), 1/Beta)
}

// Flight applies a Lévy-flight perturbation to every dimension of x
// around best, with step size scaled by stepScale:
//
//	x[i] = x[i] + stepScale * Step() * (x[i] - best[i])
//
// and writes the result into out (which may alias x).
func Flight(out, x, best []float64, stepScale float64) {
	for i := range x {
		s := Step()
		out[i] = x[i] + stepScale*s*(x[i]-best[i])
	}
}
