package schedule

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/domain"
)

// DifferentialCrossover builds a new schedule from parent p=s and three
// distinct archive members r1, r2, r3, per the AMGA2/CSO differential
// scheme (§4.1): one class index jrand is guaranteed to take the
// differential formula, so at least one class is always recombined; every other
// class independently either inherits p's reservation or is
// recombined as floor(r3.axis + etaCross*(r1.axis - r2.axis)), clamped
// per axis into bounds. The day/room axes clamp to [0, D-1]/[0, nr-1];
// the time axis clamps to [0, H-dur] per the I2 bound on a reservation's
// starting hour.
func (s *Schedule) DifferentialCrossover(r1, r2, r3 *Schedule, etaCross, probPct float64) *Schedule {
	mustSameShape(s, r1)
	mustSameShape(s, r2)
	mustSameShape(s, r3)

	n := s.NumberOfClasses()
	child := s.EmptyLike()
	if n == 0 {
		child.CalculateFitness()
		return child
	}
	jrand := rnd.IntGetUniqueN(0, n, 1)[0]
	nr := s.Configuration.NumberOfRooms()

	for pos, cc := range s.Configuration.CourseClasses {
		if pos != jrand && !rnd.FlipCoin(probPct/100) {
			child.place(pos, s.startIdx[pos])
			continue
		}
		a := r1.Reservation(pos)
		b := r2.Reservation(pos)
		base := r3.Reservation(pos)
		day := clampInt(diffAxis(base.Day, a.Day, b.Day, etaCross), 0, domain.DaysNum-1)
		room := clampInt(diffAxis(base.Room, a.Room, b.Room, etaCross), 0, nr-1)
		time := clampInt(diffAxis(base.Time, a.Time, b.Time, etaCross), 0, domain.DayHours-cc.Duration)
		child.place(pos, s.ReservationIndex(day, time, room))
	}
	child.CalculateFitness()
	return child
}

func diffAxis(base, a, b int, etaCross float64) int {
	return int(math.Floor(float64(base) + etaCross*float64(a-b)))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
