package optimizer

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gaschedule/selection"
)

// NSGA3 drives the weighted-objectives family (§4.4): fast non-dominated
// sort for front peeling, reference-point niching (selection.SelectNSGA3)
// for environmental selection instead of crowding distance, WeightedFitness
// for the Leader tie-break.
type NSGA3 struct {
	refPoints [][]float64
}

// NewNSGA3 precomputes the Das-Dennis reference set for this module's
// fixed criteria.Count objectives.
func NewNSGA3() *NSGA3 {
	return &NSGA3{refPoints: selection.GenerateReferencePoints(int(criteria.Count))}
}

func (v *NSGA3) Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule {
	pop := make([]*schedule.Schedule, opts.PopulationSize)
	for i := range pop {
		pop[i] = schedule.NewFromPrototype(prototype)
	}
	selection.FastNonDominatedSort(pop)
	return pop
}

func (v *NSGA3) Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule {
	n := len(pop)
	offspring := make([]*schedule.Schedule, 0, n)
	for len(offspring) < n {
		a := pop[rnd.IntGetUniqueN(0, n, 1)[0]]
		b := pop[rnd.IntGetUniqueN(0, n, 1)[0]]
		child := a.Crossover(b, opts.NumCrossoverPoints, opts.CrossoverProbPct)
		child.Mutate(opts.MutationProbPct, opts.MutationSize)
		offspring = append(offspring, child)
	}
	return offspring
}

func (v *NSGA3) Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule {
	combined := make([]*schedule.Schedule, 0, len(current)+len(offspring))
	combined = append(combined, current...)
	combined = append(combined, offspring...)
	return selection.SelectNSGA3(combined, opts.PopulationSize, v.refPoints)
}

func (v *NSGA3) Leader(pop []*schedule.Schedule) *schedule.Schedule {
	best := pop[0]
	for _, p := range pop[1:] {
		if p.Rank < best.Rank || (p.Rank == best.Rank && p.WeightedFitness > best.WeightedFitness) {
			best = p
		}
	}
	return best
}

// ReformThreshold follows the "NSGA-III family" rule (§4.7): trigger at
// maxRepeat/50 rather than NSGA-II's maxRepeat/100.
func (v *NSGA3) ReformThreshold(maxRepeat int) int {
	return maxRepeat / 50
}

func (v *NSGA3) Reform(opts *Options) {
	reformClassic(opts)
}
