// Package selection implements the tie-break and niching machinery every
// optimizer driver in package optimizer shares: Deb's fast non-dominated
// sort, NSGA-II crowding distance, NSGA-III reference points and
// association/niching, and AMGA2's diversity metric with ENNS pruning.
package selection

import "github.com/cpmech/gaschedule/schedule"

// FastNonDominatedSort peels pop into Pareto fronts (Deb's algorithm),
// grounded on the teacher's Island fields idom/sdom/ndby/fronts/fsizes
// — dominator sets and dominated-counts under teacher-chosen names.
// Each individual's Rank is set to its front index (0 = non-dominated).
// Returns the fronts as slices of indices into pop.
func FastNonDominatedSort(pop []*schedule.Schedule) [][]int {
	n := len(pop)
	dominatedBy := make([][]int, n) // S[p]: indices p dominates
	dominationCount := make([]int, n) // n[p]: how many dominate p

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if pop[p].Dominates(pop[q]) {
				dominatedBy[p] = append(dominatedBy[p], q)
			} else if pop[q].Dominates(pop[p]) {
				dominationCount[p]++
			}
		}
	}

	var fronts [][]int
	current := make([]int, 0, n)
	for p := 0; p < n; p++ {
		if dominationCount[p] == 0 {
			pop[p].Rank = 0
			current = append(current, p)
		}
	}

	rank := 0
	for len(current) > 0 {
		fronts = append(fronts, current)
		var next []int
		for _, p := range current {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					pop[q].Rank = rank + 1
					next = append(next, q)
				}
			}
		}
		rank++
		current = next
	}
	return fronts
}
