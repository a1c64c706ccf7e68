package optimizer

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gaschedule/selection"
)

// AMGA2 drives the archive-based family (§4.5): a bounded archive feeds
// parent formation (whole fronts + diversity fill on the boundary
// front), differential-crossover offspring inherit their parent's rank
// for rank-based mutation probability, and the combined archive+offspring
// pool is trimmed back by fast non-dominated sort + ENNS pruning.
//
// AMGA2 does not fit the Initialize/Variation/Replacement split as
// cleanly as the other variants: its own archive is the state that
// persists across generations, not the population Run threads through.
// Run still drives it (pop *is* the archive, by construction) — Variation
// and Replacement close over the same *AMGA2 receiver to share it.
type AMGA2 struct {
	archive []*schedule.Schedule
}

func NewAMGA2() *AMGA2 {
	return &AMGA2{}
}

func (v *AMGA2) Initialize(prototype *schedule.Schedule, opts Options) []*schedule.Schedule {
	pop := make([]*schedule.Schedule, opts.PopulationSize)
	for i := range pop {
		pop[i] = schedule.NewFromPrototype(prototype)
	}
	selection.FastNonDominatedSort(pop)
	v.archive = pop
	return pop
}

// formParents peels fronts from the archive until the pool reaches n,
// filling the boundary front by diversity if it would overflow.
func formParents(archive []*schedule.Schedule, n int) []*schedule.Schedule {
	fronts := selection.FastNonDominatedSort(archive)
	parents := make([]*schedule.Schedule, 0, n)
	for _, f := range fronts {
		members := indicesToSchedules(archive, f)
		if len(parents)+len(members) <= n {
			parents = append(parents, members...)
			continue
		}
		selection.Diversity(members)
		sort.Slice(members, func(i, j int) bool {
			return members[i].Diversity > members[j].Diversity
		})
		remaining := n - len(parents)
		parents = append(parents, members[:remaining]...)
		break
	}
	return parents
}

func (v *AMGA2) Variation(pop []*schedule.Schedule, opts Options) []*schedule.Schedule {
	archive := v.archive
	if len(archive) == 0 {
		archive = pop
	}
	n := opts.PopulationSize
	parents := formParents(archive, n)
	if len(parents) == 0 {
		return nil
	}

	offspring := make([]*schedule.Schedule, len(parents))
	for i, parent := range parents {
		r1, r2, r3 := distinctArchiveTriple(archive, i)
		child := parent.DifferentialCrossover(r1, r2, r3, opts.DifferentialEtaCross, opts.CrossoverProbPct)
		child.Rank = parent.Rank

		archiveSize := opts.ArchiveSize
		if archiveSize < 2 {
			archiveSize = 2
		}
		pMut := opts.MutationProbPct/100 + (1-opts.MutationProbPct/100)*(float64(child.Rank-1)/float64(archiveSize-1))
		if pMut < 0 {
			pMut = 0
		}
		child.Mutate(pMut*100, opts.MutationSize)
		offspring[i] = child
	}
	return offspring
}

// distinctArchiveTriple picks three archive members distinct from each
// other and from i, per §4.5 step 2. Falls back to wrap-around indices
// when the archive is too small for strict distinctness.
func distinctArchiveTriple(archive []*schedule.Schedule, i int) (r1, r2, r3 *schedule.Schedule) {
	n := len(archive)
	if n < 4 {
		j := (i + 1) % n
		k := (i + 2) % n
		return archive[i], archive[j], archive[k]
	}
	picks := rnd.IntGetUniqueN(0, n, 4)
	idx := make([]int, 0, 3)
	for _, c := range picks {
		if c != i {
			idx = append(idx, c)
		}
		if len(idx) == 3 {
			break
		}
	}
	return archive[idx[0]], archive[idx[1]], archive[idx[2]]
}

func (v *AMGA2) Replacement(current, offspring []*schedule.Schedule, opts Options) []*schedule.Schedule {
	archive := v.archive
	if len(archive) == 0 {
		archive = current
	}
	var combined []*schedule.Schedule
	if len(archive)+len(offspring) <= opts.ArchiveSize {
		combined = append(append([]*schedule.Schedule{}, archive...), offspring...)
	} else {
		combined = extractBestRankENNS(append(append([]*schedule.Schedule{}, archive...), offspring...), opts.ArchiveSize)
	}
	v.archive = combined

	next := formParents(combined, opts.PopulationSize)
	if len(next) == 0 {
		next = combined
	}
	return next
}

// extractBestRankENNS peels fronts (front 0 gets infinite diversity so
// it is never pruned) and runs ENNSPrune over the later fronts until the
// combined archive fits within size (§4.5 step 4). A front 0 larger than
// size is cut to its first size members.
func extractBestRankENNS(combined []*schedule.Schedule, size int) []*schedule.Schedule {
	if len(combined) <= size {
		return combined
	}
	fronts := selection.FastNonDominatedSort(combined)
	var kept []*schedule.Schedule
	for fi, f := range fronts {
		members := indicesToSchedules(combined, f)
		if len(kept) >= size {
			break
		}
		selection.Diversity(members)
		if fi == 0 {
			for _, m := range members {
				m.Diversity = math.Inf(1)
			}
		}
		room := size - len(kept)
		if len(members) <= room {
			kept = append(kept, members...)
			continue
		}
		pruned := selection.ENNSPrune(members, room)
		kept = append(kept, pruned...)
		break
	}
	if len(kept) > size {
		kept = kept[:size]
	}
	return kept
}

func (v *AMGA2) Leader(pop []*schedule.Schedule) *schedule.Schedule {
	best := pop[0]
	for _, p := range pop[1:] {
		if p.Rank < best.Rank || (p.Rank == best.Rank && p.Fitness > best.Fitness) {
			best = p
		}
	}
	return best
}

func (v *AMGA2) ReformThreshold(maxRepeat int) int {
	return maxRepeat / 100
}

func (v *AMGA2) Reform(opts *Options) {
	reformClassic(opts)
}
