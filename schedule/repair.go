package schedule

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/domain"
)

// Repair relocates class classPos to newRes, updating cells and
// startIdx consistently (I1, I2). If newRes is nil, or falls outside
// the grid bounds for this class's duration, a fresh in-bounds
// reservation is drawn instead — repair always leaves the chromosome
// valid, which is how the optimizer core avoids ever panicking on a bad
// chromosome (§7 Error Handling Design).
func (s *Schedule) Repair(classPos int, newRes *domain.Reservation) {
	cc := s.Configuration.CourseClasses[classPos]
	idx := -1
	if newRes != nil && s.inBounds(*newRes, cc.Duration) {
		idx = s.ReservationIndex(newRes.Day, newRes.Time, newRes.Room)
	}
	for idx < 0 {
		idx = s.randomReservationIndex(cc)
	}
	s.remove(classPos)
	s.place(classPos, idx)
}

func (s *Schedule) inBounds(r domain.Reservation, dur int) bool {
	nr := s.Configuration.NumberOfRooms()
	if r.Day < 0 || r.Day >= domain.DaysNum {
		return false
	}
	if r.Room < 0 || r.Room >= nr {
		return false
	}
	if r.Time < 0 || r.Time > domain.DayHours-dur {
		return false
	}
	return true
}

func (s *Schedule) randomReservationIndex(cc *domain.CourseClass) int {
	nr := s.Configuration.NumberOfRooms()
	day := rnd.IntGetUniqueN(0, domain.DaysNum, 1)[0]
	room := rnd.IntGetUniqueN(0, nr, 1)[0]
	time := rnd.IntGetUniqueN(0, domain.DayHours-cc.Duration+1, 1)[0]
	return s.ReservationIndex(day, time, room)
}
