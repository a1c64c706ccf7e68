package schedule

import "github.com/cpmech/gosl/utl"

// Dominates reports whether s Pareto-dominates other over Objectives:
// every objective of s is ≤ the corresponding objective of other, and at
// least one is strictly less (P7: antisymmetric, irreflexive).
func (s *Schedule) Dominates(other *Schedule) bool {
	dominates, _ := utl.DblsParetoMin(s.Objectives[:], other.Objectives[:])
	return dominates
}

// Compare runs both directions of domination in one pass, grounded on
// the teacher's Solution.Compare (utl.DblsParetoMin applied symmetrically).
func (s *Schedule) Compare(other *Schedule) (sDominates, otherDominates bool) {
	return utl.DblsParetoMin(s.Objectives[:], other.Objectives[:])
}

// GetDifference is the Hamming distance between s's and other's Criteria
// vectors: the number of (class, criterion) flags that disagree.
func (s *Schedule) GetDifference(other *Schedule) int {
	n := len(s.Criteria)
	if len(other.Criteria) < n {
		n = len(other.Criteria)
	}
	diff := 0
	for i := 0; i < n; i++ {
		if s.Criteria[i] != other.Criteria[i] {
			diff++
		}
	}
	return diff
}
