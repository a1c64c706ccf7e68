// Package criteria evaluates the five per-class constraint predicates
// used by every optimizer in this module, in the fixed order the rest of
// the core depends on, and owns the objective-weight vector those
// predicates are scored against.
package criteria

import "github.com/cpmech/gaschedule/domain"

// Criterion identifies one of the five fixed predicates. The numeric
// values are the canonical order §4.1/§4.2 requires: every criteria bit
// vector and every objective vector is indexed by this order.
type Criterion int

const (
	RoomNotOverlapped Criterion = iota
	SeatsOk
	LabOk
	NoProfessorClash
	NoGroupClash
	Count // number of criteria, K
)

// Weights assigns a soft-constraint penalty to each criterion. A weight
// of 0 marks a hard constraint ("must not violate"); constraints with a
// positive weight are soft. Owned explicitly by whoever builds a
// Schedule (threaded through domain.Configuration) rather than a
// package-level mutable global (§9 Design Notes).
type Weights [Count]float64

// DefaultWeights is [0, 0.5, 0.5, 0, 0]: room/professor/group overlap
// are hard, seats/lab are soft.
func DefaultWeights() Weights {
	return Weights{0, 0.5, 0.5, 0, 0}
}

// Grid is the minimal slot-occupancy query surface the criteria
// predicates need. schedule.Schedule implements it; keeping the
// dependency this narrow avoids a schedule<->criteria import cycle.
type Grid interface {
	// Occupants returns the classes occupying reservation index idx,
	// in no particular order.
	Occupants(idx int) []*domain.CourseClass
	// ReservationIndex returns the canonical slot index for (day, time, room).
	ReservationIndex(day, time, room int) int
}

// RoomNotOverlappedOK reports whether every hour of [start, start+dur)
// at the given room has at most one occupant.
func RoomNotOverlappedOK(g Grid, day, room, time, dur int) bool {
	for k := 0; k < dur; k++ {
		idx := g.ReservationIndex(day, time+k, room)
		if len(g.Occupants(idx)) > 1 {
			return false
		}
	}
	return true
}

// SeatsOK reports whether the room has enough seats for the class.
func SeatsOK(room *domain.Room, cc *domain.CourseClass) bool {
	return room.Seats >= cc.SeatsRequired
}

// LabOK reports whether the room satisfies the class's lab requirement.
func LabOK(room *domain.Room, cc *domain.CourseClass) bool {
	return !cc.LabRequired || room.Lab
}

// ClashScan walks every room for the class's (day, time) block across its
// duration, looking for the first class sharing a professor and the
// first sharing a student group. It returns as soon as both have been
// found (early exit, replacing the source's raise-to-abort control flow
// per §9 Design Notes: "Exceptions as control flow").
func ClashScan(g Grid, nr int, day, time, dur int, self *domain.CourseClass) (professorClash, groupClash bool) {
	for k := 0; k < dur; k++ {
		t := time + k
		for room := 0; room < nr; room++ {
			idx := g.ReservationIndex(day, t, room)
			for _, other := range g.Occupants(idx) {
				if other.Id == self.Id {
					continue
				}
				if !professorClash && self.ProfessorOverlaps(other) {
					professorClash = true
				}
				if !groupClash && self.GroupsOverlap(other) {
					groupClash = true
				}
				if professorClash && groupClash {
					return
				}
			}
		}
	}
	return
}
