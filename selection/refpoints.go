package selection

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/schedule"
)

// DasDennis enumerates every nonnegative integer vector of length m
// summing to p, each divided by p: the canonical Das-Dennis simplex
// lattice used to seed NSGA-III's reference directions.
func DasDennis(m, p int) [][]float64 {
	combos := sumCombinations(m, p)
	points := make([][]float64, len(combos))
	for i, c := range combos {
		pt := make([]float64, m)
		for j, v := range c {
			pt[j] = float64(v) / float64(p)
		}
		points[i] = pt
	}
	return points
}

// sumCombinations enumerates every length-m tuple of nonnegative ints
// summing to p (a stars-and-bars recursion; count = C(p+m-1, m-1)).
func sumCombinations(m, p int) [][]int {
	if m == 1 {
		return [][]int{{p}}
	}
	var out [][]int
	for i := 0; i <= p; i++ {
		for _, rest := range sumCombinations(m-1, p-i) {
			out = append(out, append([]int{i}, rest...))
		}
	}
	return out
}

// GenerateReferencePoints produces NSGA-III's reference direction set for
// m objectives (§4.4). For m < 8 it uses a single Das-Dennis layer with
// 6 divisions; for m >= 8 it uses two layers (divisions 3 and 2), with
// the inner layer shrunk halfway toward the centroid 1/m.
func GenerateReferencePoints(m int) [][]float64 {
	if m < 8 {
		return DasDennis(m, 6)
	}
	outer := DasDennis(m, 3)
	inner := DasDennis(m, 2)
	centroid := make([]float64, m)
	for i := range centroid {
		centroid[i] = 1.0 / float64(m)
	}
	shrunk := make([][]float64, len(inner))
	for i, pt := range inner {
		s := make([]float64, m)
		for j := range s {
			s[j] = (pt[j] + centroid[j]) / 2
		}
		shrunk[i] = s
	}
	return append(outer, shrunk...)
}

// PerpendicularDistance is the distance from point x to the line through
// the origin along direction dir.
func PerpendicularDistance(dir, x []float64) float64 {
	var dot, dirNormSq float64
	for i := range dir {
		dot += dir[i] * x[i]
		dirNormSq += dir[i] * dir[i]
	}
	if dirNormSq < 1e-30 {
		dirNormSq = 1e-30
	}
	t := dot / dirNormSq
	var distSq float64
	for i := range dir {
		d := x[i] - t*dir[i]
		distSq += d * d
	}
	return math.Sqrt(distSq)
}

// SelectNSGA3 implements the §4.4 environmental selection: fast
// non-dominated sort of the combined population, whole fronts accepted
// until the next would overflow N, then reference-point niching over
// the boundary front.
func SelectNSGA3(combined []*schedule.Schedule, n int, refPoints [][]float64) []*schedule.Schedule {
	fronts := FastNonDominatedSort(combined)

	var next []int
	var lastFront []int
	for _, f := range fronts {
		if len(next)+len(f) > n {
			lastFront = f
			break
		}
		next = append(next, f...)
	}
	if len(next) == n || lastFront == nil {
		return toSchedules(combined, firstN(next, n))
	}

	// collected = every individual in an already-accepted front plus the boundary front
	collected := append(append([]int{}, next...), lastFront...)
	translateAndNormalize(combined, collected, refPoints)
	associateIdx, associateDist := associate(combined, collected, refPoints)

	memberCount := make([]int, len(refPoints))
	isAccepted := make(map[int]bool, len(next))
	for _, i := range next {
		isAccepted[i] = true
	}

	type candidate struct {
		ind  int
		dist float64
	}
	potential := make(map[int][]candidate) // refIdx -> boundary-front candidates
	for pos, i := range collected {
		if isAccepted[i] {
			memberCount[associateIdx[pos]]++
			continue
		}
		r := associateIdx[pos]
		potential[r] = append(potential[r], candidate{ind: i, dist: associateDist[pos]})
	}

	for len(next) < n {
		refIdx := -1
		for r, cands := range potential {
			if len(cands) == 0 {
				continue
			}
			if refIdx < 0 || memberCount[r] < memberCount[refIdx] {
				refIdx = r
			}
		}
		if refIdx < 0 {
			break // no reference point retains any potential member
		}
		cands := potential[refIdx]
		var choice int
		if memberCount[refIdx] == 0 {
			choice = 0
			for i, c := range cands {
				if c.dist < cands[choice].dist {
					choice = i
				}
			}
		} else {
			choice = rnd.IntGetUniqueN(0, len(cands), 1)[0]
		}
		next = append(next, cands[choice].ind)
		memberCount[refIdx]++
		potential[refIdx] = append(cands[:choice], cands[choice+1:]...)
	}
	return toSchedules(combined, next)
}

func firstN(idx []int, n int) []int {
	if len(idx) > n {
		return idx[:n]
	}
	return idx
}

func toSchedules(pop []*schedule.Schedule, idx []int) []*schedule.Schedule {
	out := make([]*schedule.Schedule, len(idx))
	for i, p := range idx {
		out[i] = pop[p]
	}
	return out
}

func translateAndNormalize(pop []*schedule.Schedule, idx []int, refPoints [][]float64) {
	k := int(criteria.Count)
	ideal := make([]float64, k)
	for j := range ideal {
		ideal[j] = math.Inf(1)
	}
	for _, i := range idx {
		for j := 0; j < k; j++ {
			if pop[i].Objectives[j] < ideal[j] {
				ideal[j] = pop[i].Objectives[j]
			}
		}
	}
	for _, i := range idx {
		for j := 0; j < k; j++ {
			pop[i].ConvertedObjectives[j] = pop[i].Objectives[j] - ideal[j]
		}
	}

	intercepts := computeIntercepts(pop, idx, k)
	for _, i := range idx {
		for j := 0; j < k; j++ {
			denom := intercepts[j] + 1e-10
			pop[i].ConvertedObjectives[j] /= denom
		}
	}
}

// computeIntercepts finds the extreme point per objective via achievement
// scalarization and solves for hyperplane intercepts; on a degenerate
// (near-singular) system it falls back to per-objective maxima (§7
// Error Handling Design: Numerical, never surfaced as an error).
func computeIntercepts(pop []*schedule.Schedule, idx []int, k int) []float64 {
	const eps = 1e-10
	extreme := make([][]float64, k)
	for axis := 0; axis < k; axis++ {
		w := make([]float64, k)
		for j := range w {
			if j == axis {
				w[j] = 1
			} else {
				w[j] = eps
			}
		}
		bestIdx, bestASF := -1, math.Inf(1)
		for _, i := range idx {
			asf := achievementScalarization(pop[i].ConvertedObjectives[:k], w)
			if asf < bestASF {
				bestASF, bestIdx = asf, i
			}
		}
		extreme[axis] = append([]float64(nil), pop[bestIdx].ConvertedObjectives[:k]...)
	}

	intercepts, ok := solveHyperplane(extreme, k)
	if !ok {
		return maxIntercepts(pop, idx, k)
	}
	for _, v := range intercepts {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return maxIntercepts(pop, idx, k)
		}
	}
	return intercepts
}

func achievementScalarization(x, w []float64) float64 {
	max := math.Inf(-1)
	for i := range x {
		v := x[i] / math.Max(w[i], 1e-10)
		if v > max {
			max = v
		}
	}
	return max
}

func maxIntercepts(pop []*schedule.Schedule, idx []int, k int) []float64 {
	out := make([]float64, k)
	for j := 0; j < k; j++ {
		m := 1e-10
		for _, i := range idx {
			if pop[i].ConvertedObjectives[j] > m {
				m = pop[i].ConvertedObjectives[j]
			}
		}
		out[j] = m
	}
	return out
}

// solveHyperplane solves A*x = 1 (a 1-vector), where the rows of A are
// the extreme points, via Gauss-Jordan elimination, returning
// intercepts_f = 1/x_f. ok is false on a singular system.
func solveHyperplane(extreme [][]float64, k int) (intercepts []float64, ok bool) {
	a := make([][]float64, k)
	for i := range a {
		a[i] = append([]float64(nil), extreme[i]...)
		a[i] = append(a[i], 1)
	}
	for col := 0; col < k; col++ {
		pivot := -1
		best := 1e-10
		for row := col; row < k; row++ {
			if math.Abs(a[row][col]) > best {
				best, pivot = math.Abs(a[row][col]), row
			}
		}
		if pivot < 0 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		pv := a[col][col]
		for j := col; j <= k; j++ {
			a[col][j] /= pv
		}
		for row := 0; row < k; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			for j := col; j <= k; j++ {
				a[row][j] -= factor * a[col][j]
			}
		}
	}
	x := make([]float64, k)
	for i := 0; i < k; i++ {
		x[i] = a[i][k]
	}
	intercepts = make([]float64, k)
	for i, xi := range x {
		if math.Abs(xi) < 1e-12 {
			return nil, false
		}
		intercepts[i] = 1 / xi
	}
	return intercepts, true
}

// associate finds, for every individual in idx, its nearest reference
// point by perpendicular distance in converted-objective space.
func associate(pop []*schedule.Schedule, idx []int, refPoints [][]float64) (refIdx []int, dist []float64) {
	k := int(criteria.Count)
	refIdx = make([]int, len(idx))
	dist = make([]float64, len(idx))
	for pos, i := range idx {
		best, bestDist := -1, math.Inf(1)
		for r, dir := range refPoints {
			d := PerpendicularDistance(dir, pop[i].ConvertedObjectives[:k])
			if d < bestDist {
				bestDist, best = d, r
			}
		}
		refIdx[pos], dist[pos] = best, bestDist
	}
	return
}
