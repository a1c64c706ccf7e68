package schedule

import (
	"math"

	"github.com/cpmech/gaschedule/domain"
)

// PositionDims is the number of reals encoding one class's reservation
// in a continuous-position vector (day, room, time).
const PositionDims = 3

// PositionsLen is the length of the continuous-position vector for this
// schedule: one (day, room, time) triple per class.
func (s *Schedule) PositionsLen() int {
	return s.NumberOfClasses() * PositionDims
}

// ExtractPositions writes (day, room, time) for every class, in
// configuration order, into buf. len(buf) must equal PositionsLen().
func (s *Schedule) ExtractPositions(buf []float64) {
	for pos := range s.Configuration.CourseClasses {
		r := s.Reservation(pos)
		buf[pos*PositionDims+0] = float64(r.Day)
		buf[pos*PositionDims+1] = float64(r.Room)
		buf[pos*PositionDims+2] = float64(r.Time)
	}
}

// PositionBounds returns, for every dimension of a continuous-position
// vector, the inclusive upper bound a continuous metaheuristic may
// drive that dimension toward (the lower bound is always 0).
func (s *Schedule) PositionBounds() []float64 {
	nr := float64(s.Configuration.NumberOfRooms() - 1)
	bounds := make([]float64, s.PositionsLen())
	for pos, cc := range s.Configuration.CourseClasses {
		bounds[pos*PositionDims+0] = float64(domain.DaysNum - 1)
		bounds[pos*PositionDims+1] = nr
		bounds[pos*PositionDims+2] = float64(domain.DayHours - cc.Duration)
	}
	return bounds
}

// UpdatePositions re-reads buf (as written by ExtractPositions, then
// perturbed by a continuous metaheuristic) and repairs every class into
// the reservation it implies: day = |x| mod D, room = |x| mod nr,
// time = |x| mod (H-dur+1). The time modulus is H-dur+1, not the H-dur
// of §4.1's "Positions vector" formula: a valid start hour ranges over
// [0, H-dur] inclusive (I2), so mod (H-dur) alone can never land on the
// top of that range and a class already sitting at time=H-dur would be
// silently shifted on every round trip, violating P10. Using H-dur+1
// is a deliberate, disclosed widening of the modulus to cover the full
// inclusive range, which makes time=H-dur reachable from a position
// vector (Repair still redraws any out-of-range reservation).
func (s *Schedule) UpdatePositions(buf []float64) {
	nr := s.Configuration.NumberOfRooms()
	for pos, cc := range s.Configuration.CourseClasses {
		dayF := math.Abs(buf[pos*PositionDims+0])
		roomF := math.Abs(buf[pos*PositionDims+1])
		timeF := math.Abs(buf[pos*PositionDims+2])
		day := int(dayF) % domain.DaysNum
		room := int(roomF) % nr
		timeSpan := domain.DayHours - cc.Duration + 1
		time := int(timeF) % timeSpan
		res := domain.NewReservation(nr, day, time, room)
		s.Repair(pos, &res)
	}
	s.CalculateFitness()
}
