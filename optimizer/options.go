// Package optimizer implements the generation-loop drivers for every
// search variant this module supports (NSGA-II, NSGA-III, APNsgaIII,
// AMGA2, and the continuous-position family CSO/FPA/DLBA/GAQPSO/
// HGASSO/EMoSOA/rQIEA), all sharing the §4.7 driver contract and the
// schedule/selection/levy packages as their common scaffold.
package optimizer

// Options collects the generation-loop knobs every variant reads,
// generalizing the teacher's Parameters/ConfParams fields (Nsol, Tf,
// DEpc, PmFlt, DtOut, ...) to this domain's equivalents.
type Options struct {
	PopulationSize      int
	MaxGenerations      int
	MinFitness          float64 // stop once Best().Fitness exceeds this (default 0.999)
	MaxRepeat           int     // reform trigger threshold base (default 100)
	CrossoverProbPct    float64 // percent, 0..100
	MutationProbPct     float64 // percent, 0..100
	MutationSize        int     // classes relocated per mutation event
	NumCrossoverPoints  int
	DiscoveryProb       float64 // pa, used by CSO/FPA/DLBA
	DifferentialEtaCross float64 // AMGA2 differential crossover parameter
	ArchiveSize         int     // AMGA2 archive bound A
	Seed                int64
}

// DefaultOptions mirrors the teacher's Parameters.Default in spirit:
// conservative, broadly applicable defaults for a population search over
// this module's chromosome.
func DefaultOptions() Options {
	return Options{
		PopulationSize:       100,
		MaxGenerations:       1000,
		MinFitness:           0.999,
		MaxRepeat:            100,
		CrossoverProbPct:     80,
		MutationProbPct:      3,
		MutationSize:         2,
		NumCrossoverPoints:   2,
		DiscoveryProb:        0.25,
		DifferentialEtaCross: 0.8,
		ArchiveSize:          100,
		Seed:                 0,
	}
}
