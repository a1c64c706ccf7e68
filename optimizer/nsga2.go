package optimizer

import (
	"sort"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gaschedule/selection"
)

// NSGA2 is the classic Deb NSGA-II driver: fast non-dominated sort plus
// crowding distance for environmental selection, scalar legacy Fitness
// (§4.1's reset-to-zero rule) for the Leader tie-break.
type NSGA2 struct{}

func (NSGA2) Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule {
	pop := make([]*schedule.Schedule, opts.PopulationSize)
	for i := range pop {
		pop[i] = schedule.NewFromPrototype(prototype)
	}
	selection.FastNonDominatedSort(pop)
	return pop
}

func (NSGA2) Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule {
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

func (NSGA2) Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule {
	combined := make([]*schedule.Schedule, 0, len(current)+len(offspring))
	combined = append(combined, current...)
	combined = append(combined, offspring...)

	fronts := selection.FastNonDominatedSort(combined)
	next := make([]*schedule.Schedule, 0, opts.PopulationSize)
	for _, f := range fronts {
		members := indicesToSchedules(combined, f)
		selection.CrowdingDistance(members)
		if len(next)+len(members) <= opts.PopulationSize {
			next = append(next, members...)
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].CrowdDistance > members[j].CrowdDistance
		})
		remaining := opts.PopulationSize - len(next)
		next = append(next, members[:remaining]...)
		break
	}
	return next
}

func (NSGA2) Leader(pop []*schedule.Schedule) *schedule.Schedule {
	best := pop[0]
	for _, p := range pop[1:] {
		if p.Rank < best.Rank || (p.Rank == best.Rank && p.Fitness > best.Fitness) {
			best = p
		}
	}
	return best
}

func (NSGA2) ReformThreshold(maxRepeat int) int {
	return maxRepeat / 100
}

func (NSGA2) Reform(opts *Options) {
	reformClassic(opts)
}

func indicesToSchedules(pop []*schedule.Schedule, idx []int) []*schedule.Schedule {
	out := make([]*schedule.Schedule, len(idx))
	for i, p := range idx {
		out[i] = pop[p]
	}
	return out
}
