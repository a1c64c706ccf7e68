package schedule_test

import (
	"testing"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gosl/rnd"
	"github.com/google/go-cmp/cmp"
)

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// buildConfig assembles a small but non-trivial configuration: 2
// professors, 2 courses, 3 rooms (one a lab), 2 groups, 6 classes of
// varying duration — enough rooms*hours*days slack that random
// construction won't trivially collide on everything.
func buildConfig(t *testing.T) *domain.Configuration {
	t.Helper()
	b := domain.NewBuilder()
	mustNil(t, b.AddProfessor(1, "P1"))
	mustNil(t, b.AddProfessor(2, "P2"))
	mustNil(t, b.AddCourse(1, "C1"))
	mustNil(t, b.AddCourse(2, "C2"))
	mustNil(t, b.AddGroup(1, "G1", 20))
	mustNil(t, b.AddGroup(2, "G2", 15))
	b.AddRoom("R0", false, 50)
	b.AddRoom("R1", false, 30)
	b.AddRoom("Lab0", true, 25)

	for i := 0; i < 6; i++ {
		prof := 1 + i%2
		course := 1 + i%2
		dur := 1 + i%3
		lab := i%4 == 0
		_, err := b.AddClass(prof, course, lab, dur, []int{1 + i%2})
		mustNil(t, err)
	}

	cfg, err := b.Build()
	mustNil(t, err)
	return cfg
}

func newPopulated(t *testing.T, seed int) *schedule.Schedule {
	t.Helper()
	cfg := buildConfig(t)
	proto := schedule.NewPrototype(cfg, criteria.DefaultWeights())
	rnd.Init(seed)
	return schedule.NewFromPrototype(proto)
}

// checkP1P2 verifies bounds (P1) and occupancy consistency (P2) for
// every class in s.
func checkP1P2(t *testing.T, s *schedule.Schedule) {
	t.Helper()
	nr := s.Configuration.NumberOfRooms()
	for pos, cc := range s.Configuration.CourseClasses {
		if s.StartIndex(pos) < 0 {
			t.Fatalf("class %d unplaced", pos)
		}
		r := s.Reservation(pos)
		if r.Day < 0 || r.Day >= domain.DaysNum {
			t.Errorf("class %d: day %d out of bounds", pos, r.Day)
		}
		if r.Room < 0 || r.Room >= nr {
			t.Errorf("class %d: room %d out of bounds", pos, r.Room)
		}
		if r.Time < 0 || r.Time > domain.DayHours-cc.Duration {
			t.Errorf("class %d: time %d out of bounds for duration %d", pos, r.Time, cc.Duration)
		}
		for k := 0; k < cc.Duration; k++ {
			idx := s.ReservationIndex(r.Day, r.Time+k, r.Room)
			found := false
			for _, occ := range s.Occupants(idx) {
				if occ.Id == cc.Id {
					found = true
				}
			}
			if !found {
				t.Errorf("class %d missing from its own slot at offset %d", pos, k)
			}
		}
	}
}

func TestNewFromPrototypeSatisfiesP1AndP2(t *testing.T) {
	s := newPopulated(t, 42)
	checkP1P2(t, s)
}

func TestCalculateFitnessDeterministic(t *testing.T) {
	s := newPopulated(t, 7)
	wantCriteria := append([]bool(nil), s.Criteria...)
	wantObjectives := s.Objectives
	wantFitness := s.Fitness
	wantWeighted := s.WeightedFitness

	s.CalculateFitness()

	if s.Fitness != wantFitness || s.WeightedFitness != wantWeighted {
		t.Errorf("fitness changed across repeated calculation: (%v,%v) -> (%v,%v)",
			wantFitness, wantWeighted, s.Fitness, s.WeightedFitness)
	}
	if s.Objectives != wantObjectives {
		t.Errorf("objectives changed across repeated calculation: %v -> %v", wantObjectives, s.Objectives)
	}
	for i, v := range wantCriteria {
		if s.Criteria[i] != v {
			t.Fatalf("criteria[%d] changed across repeated calculation", i)
		}
	}
}

func TestCrossoverClosure(t *testing.T) {
	rnd.Init(1)
	a := newPopulated(t, 10)
	b := newPopulated(t, 11)

	child := a.Crossover(b, 2, 100)
	checkP1P2(t, child)
	if got, want := child.NumberOfClasses(), a.NumberOfClasses(); got != want {
		t.Errorf("child has %d classes, want %d", got, want)
	}
}

func TestCrossoverZeroProbReturnsCopyOfSelf(t *testing.T) {
	rnd.Init(2)
	a := newPopulated(t, 20)
	b := newPopulated(t, 21)

	child := a.Crossover(b, 2, 0)
	for pos := range a.Configuration.CourseClasses {
		if child.StartIndex(pos) != a.StartIndex(pos) {
			t.Fatalf("class %d: child diverged from self at prob=0", pos)
		}
	}
}

func TestMutationBound(t *testing.T) {
	rnd.Init(3)
	s := newPopulated(t, 30)
	before := make([]int, s.NumberOfClasses())
	for i := range before {
		before[i] = s.StartIndex(i)
	}

	s.Mutate(100, 2)
	checkP1P2(t, s)

	changed := 0
	for i, idx := range before {
		if s.StartIndex(i) != idx {
			changed++
		}
	}
	if changed > 2 {
		t.Errorf("mutation changed %d classes, want at most 2", changed)
	}
}

func TestMutationZeroProbNoOp(t *testing.T) {
	rnd.Init(4)
	s := newPopulated(t, 40)
	before := make([]int, s.NumberOfClasses())
	for i := range before {
		before[i] = s.StartIndex(i)
	}
	s.Mutate(0, 3)
	for i, idx := range before {
		if s.StartIndex(i) != idx {
			t.Errorf("class %d moved despite prob=0", i)
		}
	}
}

func TestRepairAlwaysInBounds(t *testing.T) {
	rnd.Init(5)
	s := newPopulated(t, 50)
	badRes := domain.NewReservation(s.Configuration.NumberOfRooms(), -1, -1, 999)
	s.Repair(0, &badRes)
	checkP1P2(t, s)
}

func TestDifferentialCrossoverClosure(t *testing.T) {
	rnd.Init(6)
	p := newPopulated(t, 60)
	r1 := newPopulated(t, 61)
	r2 := newPopulated(t, 62)
	r3 := newPopulated(t, 63)

	child := p.DifferentialCrossover(r1, r2, r3, 0.8, 50)
	checkP1P2(t, child)
	if got, want := child.NumberOfClasses(), p.NumberOfClasses(); got != want {
		t.Errorf("child has %d classes, want %d", got, want)
	}
}

func TestDominationIrreflexiveAndAntisymmetric(t *testing.T) {
	a := newPopulated(t, 70)
	if a.Dominates(a) {
		t.Error("a schedule must not dominate itself (irreflexive)")
	}
	b := newPopulated(t, 71)
	if a.Dominates(b) && b.Dominates(a) {
		t.Error("a and b cannot dominate each other (antisymmetric)")
	}
}

func TestGetDifferenceIsHammingDistance(t *testing.T) {
	a := newPopulated(t, 80)
	if diff := a.GetDifference(a); diff != 0 {
		t.Errorf("GetDifference(self) = %d, want 0", diff)
	}
}

func TestPositionsRoundTripRepairsToBounds(t *testing.T) {
	rnd.Init(9)
	s := newPopulated(t, 90)
	buf := make([]float64, s.PositionsLen())
	s.ExtractPositions(buf)

	// perturb wildly; UpdatePositions must still repair into bounds
	for i := range buf {
		buf[i] += 1000
	}
	s.UpdatePositions(buf)
	checkP1P2(t, s)
}

func TestPositionsRoundTripPreservesReservations(t *testing.T) {
	rnd.Init(12)
	s := newPopulated(t, 110)
	before := make([]domain.Reservation, s.NumberOfClasses())
	for pos := range before {
		before[pos] = s.Reservation(pos)
	}

	buf := make([]float64, s.PositionsLen())
	s.ExtractPositions(buf)
	s.UpdatePositions(buf)

	for pos, want := range before {
		got := s.Reservation(pos)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("class %d: reservation changed across extract/update round trip (-want +got):\n%s", pos, diff)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	rnd.Init(11)
	s := newPopulated(t, 100)
	clone := s.Clone()

	clone.Mutate(100, s.NumberOfClasses())

	same := true
	for pos := range s.Configuration.CourseClasses {
		if s.StartIndex(pos) != clone.StartIndex(pos) {
			same = false
		}
	}
	if same {
		t.Error("expected clone mutation to diverge from the original (clone not independent)")
	}
	checkP1P2(t, s)
}
