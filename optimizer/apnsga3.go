package optimizer

import (
	"sort"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gaschedule/selection"
)

// APNsgaIII is Adaptive Population NSGA-III with Dual Control Strategy
// (Wu, Yang, Zhou et al., 2021), grounded directly on
// algorithm/APNsgaIII.py: NSGA-III's front-peeling + reference-point
// replacement is unchanged, but every generation each chromosome is
// cloned into a mutated "tumor". A tumor that dominates its parent
// replaces it in place. Once the search has stagnated for 15
// generations, non-dominating tumors are kept too rather than
// discarded, growing the population toward nMax = 1.5*populationSize;
// popDec then declines it back by evicting, past the top 30% by
// fitness rank, whichever individuals are worst-normalized relative to
// the population's best/worst objective vectors (ex > 0.5).
type APNsgaIII struct {
	refPoints      [][]float64
	populationSize int
	nMax           int
	best, worst    *schedule.Schedule
	lastFitness    float64
	stagnant       int
}

func NewAPNsgaIII() *APNsgaIII {
	return &APNsgaIII{refPoints: selection.GenerateReferencePoints(int(criteria.Count))}
}

func (v *APNsgaIII) Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule {
	v.populationSize = opts.PopulationSize
	v.nMax = int(1.5 * float64(opts.PopulationSize))
	pop := make([]*schedule.Schedule, opts.PopulationSize)
	for i := range pop {
		pop[i] = schedule.NewFromPrototype(prototype)
	}
	selection.FastNonDominatedSort(pop)

	v.best = pop[0]
	for _, p := range pop[1:] {
		if p.WeightedFitness > v.best.WeightedFitness {
			v.best = p
		}
	}
	v.lastFitness = v.best.WeightedFitness
	v.stagnant = 0
	return pop
}

func (v *APNsgaIII) Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule {
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

func (v *APNsgaIII) Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule {
	combined := make([]*schedule.Schedule, 0, len(current)+len(offspring))
	combined = append(combined, current...)
	combined = append(combined, offspring...)
	next := selection.SelectNSGA3(combined, v.populationSize, v.refPoints)

	sort.Slice(next, func(i, j int) bool {
		return next[i].WeightedFitness > next[j].WeightedFitness
	})

	leader := next[0]
	if leader.WeightedFitness-v.lastFitness <= 1e-7 {
		v.stagnant++
	} else {
		v.stagnant = 0
		v.lastFitness = leader.WeightedFitness
	}
	if leader.Dominates(v.best) {
		v.best = leader
	}

	return v.dualCtrlStrategy(next, opts)
}

// dualCtrlStrategy is algorithm/APNsgaIII.py's dualCtrlStrategy: clone
// each chromosome into a mutated tumor, replace in place on dominance,
// otherwise (once stagnant for 15 generations and under nMax) append
// the tumor growing the population. A tumor dominated by the current
// worst individual is appended as the new worst; otherwise it is
// inserted just before the current worst, which stays last.
func (v *APNsgaIII) dualCtrlStrategy(population []*schedule.Schedule, opts Options) []*schedule.Schedule {
	nTmp := len(population)
	for i := 0; i < nTmp; i++ {
		chromosome := population[i]
		tumor := chromosome.Clone()
		tumor.Mutate(opts.MutationProbPct, opts.MutationSize)

		worst := population[len(population)-1]
		if tumor.Dominates(chromosome) {
			population[i] = tumor
			if tumor.Dominates(v.best) {
				v.best = tumor
			}
			continue
		}
		if v.stagnant >= 15 && len(population) < v.nMax {
			if worst.Dominates(tumor) {
				population = append(population, tumor)
			} else {
				population = insertBeforeLast(population, tumor)
			}
		}
	}
	v.worst = population[len(population)-1]
	return v.popDec(population)
}

func insertBeforeLast(s []*schedule.Schedule, x *schedule.Schedule) []*schedule.Schedule {
	n := len(s)
	out := make([]*schedule.Schedule, n+1)
	copy(out, s[:n-1])
	out[n-1] = x
	out[n] = s[n-1]
	return out
}

// ex is algorithm/APNsgaIII.py's ex: chromosome's objective distance to
// the tracked best, normalized by the tracked worst-to-best spread
// across every objective. Values near 0 are close to best, values
// above 0.5 are closer to worst than to best.
func (v *APNsgaIII) ex(chromosome *schedule.Schedule) float64 {
	var numerator, denominator float64
	for f := 0; f < int(criteria.Count); f++ {
		numerator += chromosome.Objectives[f] - v.best.Objectives[f]
		denominator += v.worst.Objectives[f] - v.best.Objectives[f]
	}
	return (numerator + 1) / (denominator + 1)
}

// popDec is algorithm/APNsgaIII.py's popDec: once the population has
// grown past populationSize, walk it and evict individuals beyond the
// top 30% by fitness rank whose ex exceeds 0.5, until it's back within
// populationSize. The index is not decremented after an eviction (the
// element shifted into the vacated slot is skipped that pass), matching
// the original's loop shape exactly.
func (v *APNsgaIII) popDec(population []*schedule.Schedule) []*schedule.Schedule {
	if len(population) <= v.populationSize {
		return population
	}
	rank := int(0.3 * float64(v.populationSize))
	i := 0
	for i < len(population) {
		if v.ex(population[i]) > 0.5 && i > rank {
			population = append(population[:i], population[i+1:]...)
			if len(population) <= v.populationSize {
				break
			}
		}
		i++
	}
	return population
}

func (v *APNsgaIII) Leader(pop []*schedule.Schedule) *schedule.Schedule {
	return v.best
}

// ReformThreshold follows the "NSGA-III family" rule (§4.7): trigger at
// maxRepeat/50 rather than NSGA-II's maxRepeat/100.
func (v *APNsgaIII) ReformThreshold(maxRepeat int) int {
	return maxRepeat / 50
}

func (v *APNsgaIII) Reform(opts *Options) {
	reformClassic(opts)
}
