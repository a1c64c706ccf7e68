// Package gaslog is the thin, color-coded progress logger every
// optimizer driver uses, grounded directly on the teacher's own texture:
// it forwards to gosl/io's colored Pf* family rather than introducing a
// structured logging framework the pack never uses for this kind of
// batch, single-process search (§5 Ambient Stack).
package gaslog

import "github.com/cpmech/gosl/io"

// Progress reports one generation's headline numbers.
func Progress(generation int, best, crossoverProb, mutationProb float64) {
	io.Pfblue2("gen=%4d  best=%10.6f  pc=%6.2f  pm=%6.2f\n", generation, best, crossoverProb, mutationProb)
}

// Reform announces an adaptive-reform event (reseed + probability bump).
func Reform(generation int, reason string) {
	io.Pfmag("gen=%4d  reform: %s\n", generation, reason)
}

// Improved announces a new best solution.
func Improved(generation int, best float64) {
	io.Pfyel("gen=%4d  new best=%10.6f\n", generation, best)
}

// Warn reports a non-fatal, expected-but-unusual condition (e.g. a
// SearchDegenerate early return).
func Warn(format string, args ...interface{}) {
	io.Pforan(format, args...)
}
