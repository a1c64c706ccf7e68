package criteria_test

import (
	"testing"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
)

// fakeGrid is a minimal criteria.Grid backed by an explicit idx->classes
// map, letting these tests construct occupancy scenarios directly
// without building a full schedule.Schedule.
type fakeGrid struct {
	nr       int
	occupied map[int][]*domain.CourseClass
}

func newFakeGrid(nr int) *fakeGrid {
	return &fakeGrid{nr: nr, occupied: make(map[int][]*domain.CourseClass)}
}

func (g *fakeGrid) ReservationIndex(day, time, room int) int {
	return day*g.nr*domain.DayHours + room*domain.DayHours + time
}

func (g *fakeGrid) Occupants(idx int) []*domain.CourseClass {
	return g.occupied[idx]
}

func (g *fakeGrid) place(day, time, room int, cc *domain.CourseClass) {
	idx := g.ReservationIndex(day, time, room)
	g.occupied[idx] = append(g.occupied[idx], cc)
}

func buildTwoClasses(t *testing.T) (a, b *domain.CourseClass, samePGroup *domain.Builder) {
	t.Helper()
	bld := domain.NewBuilder()
	mustNil(t, bld.AddProfessor(1, "P1"))
	mustNil(t, bld.AddProfessor(2, "P2"))
	mustNil(t, bld.AddCourse(1, "C"))
	mustNil(t, bld.AddGroup(1, "G1", 10))
	mustNil(t, bld.AddGroup(2, "G2", 10))
	bld.AddRoom("R", false, 100)

	var err error
	a, err = bld.AddClass(1, 1, false, 1, []int{1})
	mustNil(t, err)
	b, err = bld.AddClass(1, 1, false, 1, []int{2})
	mustNil(t, err)
	return a, b, bld
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestRoomNotOverlappedOK(t *testing.T) {
	a, b, _ := buildTwoClasses(t)
	g := newFakeGrid(1)
	g.place(0, 0, 0, a)

	if !criteria.RoomNotOverlappedOK(g, 0, 0, 1, 1) {
		t.Error("expected no overlap at an unoccupied slot")
	}
	g.place(0, 0, 0, b)
	if criteria.RoomNotOverlappedOK(g, 0, 0, 0, 1) {
		t.Error("expected overlap once two classes share a slot")
	}
}

func TestSeatsAndLabOK(t *testing.T) {
	bld := domain.NewBuilder()
	mustNil(t, bld.AddProfessor(1, "P"))
	mustNil(t, bld.AddCourse(1, "C"))
	mustNil(t, bld.AddGroup(1, "G", 30))
	lab := bld.AddRoom("Lab", true, 20)
	plain := bld.AddRoom("Plain", false, 40)

	cc, err := bld.AddClass(1, 1, true, 1, []int{1})
	mustNil(t, err)

	if criteria.SeatsOK(lab, cc) {
		t.Error("expected seats violation: 20 < 30")
	}
	if !criteria.SeatsOK(plain, cc) {
		t.Error("expected seats ok: 40 >= 30")
	}
	if !criteria.LabOK(lab, cc) {
		t.Error("expected lab ok: lab required, room is a lab")
	}
	if criteria.LabOK(plain, cc) {
		t.Error("expected lab violation: lab required, room is not a lab")
	}
}

func TestClashScanProfessorAndGroup(t *testing.T) {
	a, b, _ := buildTwoClasses(t)
	g := newFakeGrid(2)
	g.place(0, 0, 1, b) // different room, same (day, time) block

	profClash, groupClash := criteria.ClashScan(g, 2, 0, 0, 1, a)
	if !profClash {
		t.Error("expected professor clash (both classes share professor 1)")
	}
	if groupClash {
		t.Error("expected no group clash (disjoint groups)")
	}
}

func TestClashScanSkipsSelf(t *testing.T) {
	a, _, _ := buildTwoClasses(t)
	g := newFakeGrid(1)
	g.place(0, 0, 0, a)

	profClash, groupClash := criteria.ClashScan(g, 1, 0, 0, 1, a)
	if profClash || groupClash {
		t.Error("a class occupying its own slot must never clash with itself")
	}
}

func TestDefaultWeights(t *testing.T) {
	w := criteria.DefaultWeights()
	want := criteria.Weights{0, 0.5, 0.5, 0, 0}
	if w != want {
		t.Errorf("DefaultWeights = %v, want %v", w, want)
	}
}
