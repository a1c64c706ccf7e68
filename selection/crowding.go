package selection

import (
	"math"
	"sort"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/schedule"
)

// CrowdingDistance computes NSGA-II's crowding distance for every member
// of front and stores it in Schedule.CrowdDistance (§4.3): the front is
// sorted once by scalar Fitness, the two endpoints of that order get
// +∞, and every inner member accumulates, for each of the K objectives,
// the normalized gap between its fitness-order neighbours' objective
// values.
func CrowdingDistance(front []*schedule.Schedule) {
	n := len(front)
	if n == 0 {
		return
	}
	for _, ind := range front {
		ind.CrowdDistance = 0
	}
	if n < 3 {
		for _, ind := range front {
			ind.CrowdDistance = math.Inf(1)
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
	front[order[0]].CrowdDistance = math.Inf(1)
	front[order[n-1]].CrowdDistance = math.Inf(1)

	for k := 0; k < int(criteria.Count); k++ {
		lo, hi := objRange(front, k)
		span := hi - lo
		if span < 1e-12 {
			continue
		}
		for i := 1; i < n-1; i++ {
			if math.IsInf(front[order[i]].CrowdDistance, 1) {
				continue
			}
			prev := front[order[i-1]].Objectives[k]
			next := front[order[i+1]].Objectives[k]
			front[order[i]].CrowdDistance += (next - prev) / span
		}
	}
}

func objRange(front []*schedule.Schedule, k int) (lo, hi float64) {
	lo, hi = front[0].Objectives[k], front[0].Objectives[k]
	for _, ind := range front[1:] {
		v := ind.Objectives[k]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}
