package schedule

import (
	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
)

// CalculateFitness evaluates the five fixed criteria for every class and
// recomputes Criteria, Objectives and both scalar fitness formulations
// in a single pass (I3). Two representations coexist by design (§9 Open
// Question): the legacy reset-to-zero scalar (NSGA-II/AMGA2/HGASSO/
// EMoSOA) and the weighted-objectives vector plus its own normalized
// scalar (NSGA-III-family). Neither is derivable from the other, so both
// are always computed.
func (s *Schedule) CalculateFitness() {
	nr := s.Configuration.NumberOfRooms()
	k := int(criteria.Count)

	var acc float64          // legacy reset/halve/increment accumulator
	var weightedSum float64  // Σ (pass ? 1 : weight[k])
	s.Objectives = [criteria.Count]float64{}

	for pos, cc := range s.Configuration.CourseClasses {
		r := s.Reservation(pos)
		room := s.Configuration.Rooms[r.Room]

		roomOK := criteria.RoomNotOverlappedOK(s, r.Day, r.Room, r.Time, cc.Duration)
		seatsOK := criteria.SeatsOK(room, cc)
		labOK := criteria.LabOK(room, cc)
		profClash, groupClash := criteria.ClashScan(s, nr, r.Day, r.Time, cc.Duration, cc)
		noProfClash := !profClash
		noGroupClash := !groupClash

		passes := [criteria.Count]bool{roomOK, seatsOK, labOK, noProfClash, noGroupClash}
		for ci := 0; ci < k; ci++ {
			s.Criteria[pos*k+ci] = passes[ci]
			if passes[ci] {
				acc += 1
				weightedSum += 1
			} else {
				switch criteria.Criterion(ci) {
				case criteria.RoomNotOverlapped, criteria.NoProfessorClash, criteria.NoGroupClash:
					acc = 0
				case criteria.SeatsOk, criteria.LabOk:
					acc = acc / 2
				}
				w := s.Weights[ci]
				weightedSum += w
				if w > 0 {
					s.Objectives[ci] += 1
				} else {
					s.Objectives[ci] += 2
				}
			}
		}
	}

	n := s.NumberOfClasses()
	if n == 0 {
		s.Fitness = 0
		s.WeightedFitness = 0
		return
	}
	s.Fitness = acc / float64(n*domain.DaysNum)
	s.WeightedFitness = weightedSum / float64(n*k)
}
