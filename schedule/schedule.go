// Package schedule implements the chromosome at the heart of this module:
// encoding a weekly timetable as a (day, hour, room) placement per
// course class, evaluating it against the five fixed criteria, and the
// variation operators (crossover, differential crossover, mutation,
// repair) every optimizer in package optimizer is built from.
package schedule

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
)

// Schedule is a complete chromosome: a placement of every course class
// onto the weekly grid, together with the fitness/objective summaries
// computed from that placement (I3).
type Schedule struct {
	Configuration *domain.Configuration
	Weights       criteria.Weights

	cells    []cell // length SlotsCount(); slots[idx]
	startIdx []int  // length NumberOfClasses(), aligned with Configuration.CourseClasses (I4)

	// Criteria is a flat |classes|*K boolean vector, one flag per
	// (class, criterion), in criteria.Criterion order.
	Criteria []bool

	// Objectives is the NSGA-III/APNsgaIII objective vector (K
	// entries): violation counts, weighted per criteria.Weights.
	Objectives [criteria.Count]float64
	// ConvertedObjectives is NSGA-III's working copy, translated and
	// normalized against the population's ideal point and intercepts.
	ConvertedObjectives [criteria.Count]float64

	// Fitness is the legacy/NSGA-II scalar fitness (§4.1, reset-to-zero rule).
	Fitness float64
	// WeightedFitness is the alternative normalized scalar used
	// alongside Objectives by the NSGA-III-family optimizers.
	WeightedFitness float64

	Diversity     float64 // AMGA2 crowding metric
	CrowdDistance float64 // NSGA-II crowding distance
	Rank          int     // Pareto front rank
}

// NewPrototype builds an empty schedule bound to cfg: no classes placed
// yet, ready to be randomized via NewFromPrototype or cloned as a
// template by EmptyLike.
func NewPrototype(cfg *domain.Configuration, weights criteria.Weights) *Schedule {
	s := &Schedule{
		Configuration: cfg,
		Weights:       weights,
		cells:         make([]cell, cfg.SlotsCount()),
		startIdx:      make([]int, cfg.NumberOfClasses()),
		Criteria:      make([]bool, cfg.NumberOfClasses()*int(criteria.Count)),
	}
	for i := range s.startIdx {
		s.startIdx[i] = -1
	}
	return s
}

// EmptyLike returns a fresh, unplaced schedule sharing this schedule's
// configuration and weights.
func (s *Schedule) EmptyLike() *Schedule {
	return NewPrototype(s.Configuration, s.Weights)
}

// NewFromPrototype returns a fully randomized, fitness-evaluated
// schedule built from proto: for each class in configuration order, a
// uniformly random (day, room, time) reservation is drawn and the class
// is placed there (§4.1 "Random construction").
func NewFromPrototype(proto *Schedule) *Schedule {
	s := proto.EmptyLike()
	nr := s.Configuration.NumberOfRooms()
	for i, cc := range s.Configuration.CourseClasses {
		day := rnd.IntGetUniqueN(0, domain.DaysNum, 1)[0]
		room := rnd.IntGetUniqueN(0, nr, 1)[0]
		time := rnd.IntGetUniqueN(0, domain.DayHours-cc.Duration+1, 1)[0]
		idx := s.ReservationIndex(day, time, room)
		s.place(i, idx)
	}
	s.CalculateFitness()
	return s
}

// Clone returns a deep, independent copy of s.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{
		Configuration:   s.Configuration,
		Weights:         s.Weights,
		cells:           make([]cell, len(s.cells)),
		startIdx:        append([]int(nil), s.startIdx...),
		Criteria:        append([]bool(nil), s.Criteria...),
		Objectives:      s.Objectives,
		ConvertedObjectives: s.ConvertedObjectives,
		Fitness:         s.Fitness,
		WeightedFitness: s.WeightedFitness,
		Diversity:       s.Diversity,
		CrowdDistance:   s.CrowdDistance,
		Rank:            s.Rank,
	}
	for i, cc := range s.Configuration.CourseClasses {
		idx := s.startIdx[i]
		if idx < 0 {
			continue
		}
		for k := 0; k < cc.Duration; k++ {
			out.cells[idx+k].add(cc)
		}
	}
	return out
}

// NumberOfClasses is |classes|.
func (s *Schedule) NumberOfClasses() int {
	return len(s.startIdx)
}

// ReservationIndex computes the canonical slot index for (day, time, room).
func (s *Schedule) ReservationIndex(day, time, room int) int {
	nr := s.Configuration.NumberOfRooms()
	return day*nr*domain.DayHours + room*domain.DayHours + time
}

// Occupants returns the classes occupying slot idx.
func (s *Schedule) Occupants(idx int) []*domain.CourseClass {
	return s.cells[idx].occupants()
}

// StartIndex returns the reservation index a class (by its position in
// Configuration.CourseClasses) currently starts at, or -1 if unplaced.
func (s *Schedule) StartIndex(classPos int) int {
	return s.startIdx[classPos]
}

// Reservation decodes the (day, time, room) triple a class currently
// occupies.
func (s *Schedule) Reservation(classPos int) domain.Reservation {
	idx := s.startIdx[classPos]
	return domain.ParseReservation(s.Configuration.NumberOfRooms(), idx)
}

// place writes class classPos into cells[idx..idx+dur) and records its
// start index, without touching any previous placement. Callers that
// are relocating a class must first call remove.
func (s *Schedule) place(classPos, idx int) {
	cc := s.Configuration.CourseClasses[classPos]
	for k := 0; k < cc.Duration; k++ {
		s.cells[idx+k].add(cc)
	}
	s.startIdx[classPos] = idx
}

// remove deletes class classPos from every cell it currently occupies.
// It is idempotent: an already-unplaced class is a no-op.
func (s *Schedule) remove(classPos int) {
	idx := s.startIdx[classPos]
	if idx < 0 {
		return
	}
	cc := s.Configuration.CourseClasses[classPos]
	for k := 0; k < cc.Duration; k++ {
		s.cells[idx+k].remove(cc)
	}
	s.startIdx[classPos] = -1
}

func mustSameShape(a, b *Schedule) {
	if a.Configuration != b.Configuration {
		chk.Panic("schedule: operands must share the same configuration")
	}
}
