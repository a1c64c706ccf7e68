package selection

import (
	"math"
	"sort"

	"github.com/cpmech/gaschedule/schedule"
)

// Diversity computes AMGA2's diversity metric for every member of
// front and stores it in Schedule.Diversity (§4.5 step 1): the sum of
// squared normalized fitness gaps between neighbours in fitness-sorted
// order, with endpoints (and fronts too small to have distinct
// neighbours) given infinite diversity so they are never pruned first.
func Diversity(front []*schedule.Schedule) {
	n := len(front)
	if n == 0 {
		return
	}
	if n < 3 {
		for _, ind := range front {
			ind.Diversity = math.Inf(1)
		}
		return
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return front[order[i]].Fitness < front[order[j]].Fitness
	})
	lo, hi := front[order[0]].Fitness, front[order[n-1]].Fitness
	span := hi - lo
	front[order[0]].Diversity = math.Inf(1)
	front[order[n-1]].Diversity = math.Inf(1)
	if span < 1e-12 {
		for i := 1; i < n-1; i++ {
			front[order[i]].Diversity = math.Inf(1)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		prevGap := (front[order[i]].Fitness - front[order[i-1]].Fitness) / span
		nextGap := (front[order[i+1]].Fitness - front[order[i]].Fitness) / span
		front[order[i]].Diversity = prevGap*prevGap + nextGap*nextGap
	}
}

// ENNSPrune reduces archive to at most size members using Efficient
// Nearest-Neighbour Selection (§4.5 step 4): repeatedly find the
// smallest pairwise fitness gap among surviving members and evict the
// one of that pair whose nearest *other* surviving neighbour is
// closer (ties broken by lower index); members with infinite Diversity
// (front 0, or an endpoint) are never evicted.
func ENNSPrune(archive []*schedule.Schedule, size int) []*schedule.Schedule {
	if len(archive) <= size {
		return archive
	}
	alive := make([]bool, len(archive))
	for i := range alive {
		alive[i] = true
	}
	protected := make([]bool, len(archive))
	for i, ind := range archive {
		if math.IsInf(ind.Diversity, 1) {
			protected[i] = true
		}
	}
	remaining := len(archive)
	for remaining > size {
		i, j := closestPair(archive, alive, protected)
		if i < 0 {
			break // nothing left that's safe to evict
		}
		evict := nearestNeighbourLoser(archive, alive, protected, i, j)
		alive[evict] = false
		remaining--
	}
	out := make([]*schedule.Schedule, 0, remaining)
	for i, ok := range alive {
		if ok {
			out = append(out, archive[i])
		}
	}
	return out
}

// closestPair finds the two surviving, unprotected-or-mixed members
// with the smallest fitness gap; at least one of the pair must be
// evictable (unprotected).
func closestPair(archive []*schedule.Schedule, alive, protected []bool) (bi, bj int) {
	bi, bj = -1, -1
	best := math.Inf(1)
	for i := 0; i < len(archive); i++ {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(archive); j++ {
			if !alive[j] {
				continue
			}
			if protected[i] && protected[j] {
				continue
			}
			gap := math.Abs(archive[i].Fitness - archive[j].Fitness)
			if gap < best {
				best, bi, bj = gap, i, j
			}
		}
	}
	return
}

// nearestNeighbourLoser decides which of i, j to evict: the one whose
// nearest other surviving neighbour is closer to it (that member is
// "more redundant"); a protected member is never chosen; ties favor
// evicting the lower index (closestPair always returns i < j).
func nearestNeighbourLoser(archive []*schedule.Schedule, alive, protected []bool, i, j int) int {
	if protected[i] {
		return j
	}
	if protected[j] {
		return i
	}
	di := nearestNeighbourGap(archive, alive, i)
	dj := nearestNeighbourGap(archive, alive, j)
	if di <= dj {
		return i
	}
	return j
}

func nearestNeighbourGap(archive []*schedule.Schedule, alive []bool, i int) float64 {
	best := math.Inf(1)
	for k := 0; k < len(archive); k++ {
		if k == i || !alive[k] {
			continue
		}
		gap := math.Abs(archive[i].Fitness - archive[k].Fitness)
		if gap < best {
			best = gap
		}
	}
	return best
}
