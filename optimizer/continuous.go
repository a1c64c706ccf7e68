package optimizer

import (
	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gaschedule/selection"
)

// PositionUpdate is one continuous metaheuristic's per-individual step
// (§4.6): given the individual's current continuous position, the
// population leader's position, every individual's position (for the
// schemes that draw random others), and the per-dimension bounds, it
// returns the new position (not yet clamped or repaired).
type PositionUpdate func(cur, leader []float64, all [][]float64, bounds []float64, opts Options) []float64

// ContinuousDriver is the shared skeleton every Lévy-flight/swarm
// variant (CSO, FPA, DLBA, GAQPSO, HGASSO, EMoSOA, rQIEA) plugs into
// (§4.6: "All variants share the optimizer loop skeleton... and after
// applying their specific continuous update, materialize an updated
// chromosome via updatePositions + repair before delegating to
// NSGA-III replacement"). Variants differ only in update and reform.
type ContinuousDriver struct {
	refPoints [][]float64
	bounds    []float64
	positions map[*schedule.Schedule][]float64
	update    PositionUpdate
	reform    func(*Options)
}

// NewContinuousDriver builds a swarm driver around update (the
// variant-specific position step) and reform (the variant-specific
// reform-time probability bump, per §4.7: discovery-probability bump
// for CSO/FPA/DLBA, crossover/mutation bump for the rest).
func NewContinuousDriver(update PositionUpdate, reform func(*Options)) *ContinuousDriver {
	return &ContinuousDriver{
		refPoints: selection.GenerateReferencePoints(int(criteria.Count)),
		update:    update,
		reform:    reform,
	}
}

func (d *ContinuousDriver) Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule {
	d.bounds = prototype.PositionBounds()
	d.positions = make(map[*schedule.Schedule][]float64, opts.PopulationSize)

	pop := make([]*schedule.Schedule, opts.PopulationSize)
	for i := range pop {
		ind := schedule.NewFromPrototype(prototype)
		buf := make([]float64, ind.PositionsLen())
		ind.ExtractPositions(buf)
		pop[i] = ind
		d.positions[ind] = buf
	}
	selection.FastNonDominatedSort(pop)
	return pop
}

func (d *ContinuousDriver) Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule {
	leader := d.Leader(pop)
	leaderPos := d.positionOf(leader)

	all := make([][]float64, len(pop))
	for i, ind := range pop {
		all[i] = d.positionOf(ind)
	}

	offspring := make([]*schedule.Schedule, len(pop))
	for i, ind := range pop {
		cur := all[i]
		next := d.update(cur, leaderPos, all, d.bounds, opts)
		clampPositions(next, d.bounds)

		child := ind.Clone()
		child.UpdatePositions(next)
		d.positions[child] = next
		offspring[i] = child
	}
	return offspring
}

func (d *ContinuousDriver) Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule {
	combined := make([]*schedule.Schedule, 0, len(current)+len(offspring))
	combined = append(combined, current...)
	combined = append(combined, offspring...)
	next := selection.SelectNSGA3(combined, opts.PopulationSize, d.refPoints)

	kept := make(map[*schedule.Schedule][]float64, len(next))
	for _, ind := range next {
		kept[ind] = d.positionOf(ind)
	}
	d.positions = kept
	return next
}

func (d *ContinuousDriver) Leader(pop []*schedule.Schedule) *schedule.Schedule {
	best := pop[0]
	for _, p := range pop[1:] {
		if p.Rank < best.Rank || (p.Rank == best.Rank && p.WeightedFitness > best.WeightedFitness) {
			best = p
		}
	}
	return best
}

func (d *ContinuousDriver) ReformThreshold(maxRepeat int) int {
	return maxRepeat / 50
}

func (d *ContinuousDriver) Reform(opts *Options) {
	d.reform(opts)
}

// positionOf returns ind's tracked continuous position, lazily
// re-extracting it if ind was never seen before (defensive: every
// individual handled by Variation/Replacement is seeded in Initialize
// or stored there by a prior Variation call).
func (d *ContinuousDriver) positionOf(ind *schedule.Schedule) []float64 {
	if buf, ok := d.positions[ind]; ok {
		return buf
	}
	buf := make([]float64, ind.PositionsLen())
	ind.ExtractPositions(buf)
	d.positions[ind] = buf
	return buf
}

func clampPositions(x, bounds []float64) {
	for i := range x {
		if x[i] < 0 {
			x[i] = 0
		}
		if x[i] > bounds[i] {
			x[i] = bounds[i]
		}
	}
}
