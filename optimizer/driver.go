package optimizer

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/gaslog"
	"github.com/cpmech/gaschedule/schedule"
)

// Variant is the capability set every optimizer driver is built from
// (§9 Design Notes: "model as... a capability set {evaluate, variate,
// replace} — avoid deep inheritance trees"), generalizing the teacher's
// Island.Run dispatch over GAtype into an explicit value per optimizer
// instead of a string switch.
type Variant interface {
	// Initialize seeds a population of opts.PopulationSize schedules
	// from prototype.
	Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule
	// Variation produces a full generation of offspring (crossover and
	// mutation both applied) from the current population.
	Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule
	// Replacement combines current and offspring into the next
	// population of opts.PopulationSize schedules.
	Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule
	// Leader picks the front-leading candidate from pop (e.g. rank-0,
	// highest crowd distance, or highest scalar fitness, depending on
	// the variant's selection kernel).
	Leader(pop []*schedule.Schedule) *schedule.Schedule
	// ReformThreshold is the bestNotEnhance/repeat count, derived from
	// maxRepeat, above which a reform is triggered for this family.
	ReformThreshold(maxRepeat int) int
	// Reform nudges crossover/mutation (or discovery) probabilities
	// upward, per §4.7. Run re-seeds the RNG just before calling it.
	Reform(opts *Options)
}

// Result is what Run returns: the best schedule found and the number of
// generations actually executed.
type Result struct {
	Best        *schedule.Schedule
	Generations int
}

// Run executes the §4.7 driver loop for v against prototype.
func Run(v Variant, prototype *schedule.Schedule, opts Options) Result {
	rnd.Init(int(opts.Seed))
	pop := v.Initialize(prototype, opts)
	if len(pop) == 0 {
		return Result{Best: prototype.Clone()}
	}

	best := v.Leader(pop)
	lastBestFitness := best.Fitness
	bestNotEnhance := 0
	reformCount := int64(0)
	gen := 0

	for gen < opts.MaxGenerations && best.Fitness <= opts.MinFitness {
		if gen > 0 {
			gaslog.Progress(gen, best.Fitness, opts.CrossoverProbPct, opts.MutationProbPct)

			if best.Fitness-lastBestFitness <= 1e-7 {
				bestNotEnhance++
			} else {
				bestNotEnhance = 0
				lastBestFitness = best.Fitness
				gaslog.Improved(gen, best.Fitness)
			}

			if bestNotEnhance > v.ReformThreshold(opts.MaxRepeat) {
				reformCount++
				rnd.Init(int(opts.Seed + reformCount*1000003 + int64(gen)))
				v.Reform(&opts)
				bestNotEnhance = 0
				gaslog.Reform(gen, "no improvement")
			}
		}

		offspring := v.Variation(pop, opts)
		pop = v.Replacement(pop, offspring, opts)
		best = pickBest(best, v.Leader(pop))
		gen++
	}

	return Result{Best: best, Generations: gen}
}

// pickBest keeps whichever of old/candidate has the higher scalar
// fitness, guaranteeing P8 (front-0 monotone: a later generation's best
// is never worse than an earlier one's).
func pickBest(old, candidate *schedule.Schedule) *schedule.Schedule {
	if candidate == nil {
		return old
	}
	if old == nil || candidate.Fitness >= old.Fitness {
		return candidate
	}
	return old
}

// reformClassic is the crossover/mutation probability bump used by the
// GA-style variants (NSGA-II, NSGA-III, APNsgaIII, AMGA2) and by the
// HGASSO, EMoSOA, GAQPSO and rQIEA swarm variants: bump crossover first,
// then mutation, each capped.
func reformClassic(opts *Options) {
	if opts.CrossoverProbPct < 95 {
		opts.CrossoverProbPct++
	} else if opts.MutationProbPct < 30 {
		opts.MutationProbPct++
	}
}

// reformDiscovery is the bump used by the Lévy-flight swarm variants
// (CSO, FPA, DLBA): bump crossover first, then the discovery
// probability pa, capped at 0.5.
func reformDiscovery(opts *Options) {
	if opts.CrossoverProbPct < 95 {
		opts.CrossoverProbPct++
	} else if opts.DiscoveryProb < 0.5 {
		opts.DiscoveryProb += 0.01
	}
}
