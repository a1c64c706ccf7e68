package schedule

import "github.com/cpmech/gosl/rnd"

// Crossover returns a new schedule built from s and other by multi-point
// crossover (§4.1): with probability 1-probPct/100 it returns a deep
// copy of s; otherwise numPoints distinct class positions are chosen by
// rnd.IntGetUniqueN and used as toggle points while walking both
// parents' classes in configuration order, alternating which parent
// supplies each class's reservation. The toggle flips only after a cut
// position's class has been copied, matching Schedule.Crossover's
// "copy, then flip" order. Never mutates s or other.
func (s *Schedule) Crossover(other *Schedule, numPoints int, probPct float64) *Schedule {
	mustSameShape(s, other)
	if !rnd.FlipCoin(probPct / 100) {
		return s.Clone()
	}
	n := s.NumberOfClasses()
	cutSet := distinctIndexSet(numPoints, n)

	child := s.EmptyLike()
	takeFromSelf := rnd.FlipCoin(0.5)
	for pos := range s.Configuration.CourseClasses {
		src := other
		if takeFromSelf {
			src = s
		}
		idx := src.startIdx[pos]
		child.place(pos, idx)
		if cutSet[pos] {
			takeFromSelf = !takeFromSelf
		}
	}
	child.CalculateFitness()
	return child
}

// distinctIndexSet draws up to numPoints distinct indices from [0, n)
// via rnd.IntGetUniqueN, as a set for O(1) membership tests.
func distinctIndexSet(numPoints, n int) map[int]bool {
	set := make(map[int]bool, numPoints)
	if n == 0 {
		return set
	}
	if numPoints > n {
		numPoints = n
	}
	for _, i := range rnd.IntGetUniqueN(0, n, numPoints) {
		set[i] = true
	}
	return set
}
