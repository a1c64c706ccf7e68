package domain_test

import (
	"testing"

	"github.com/cpmech/gaschedule/domain"
	"github.com/google/go-cmp/cmp"
)

func newTestBuilder(t *testing.T) *domain.Builder {
	t.Helper()
	return domain.NewBuilder()
}

func TestRoomIdsAssignedInInputOrder(t *testing.T) {
	b := newTestBuilder(t)
	r0 := b.AddRoom("R0", false, 10)
	r1 := b.AddRoom("R1", true, 20)
	if r0.Id != 0 || r1.Id != 1 {
		t.Errorf("got ids %d, %d; want 0, 1", r0.Id, r1.Id)
	}
}

func TestClassFactoryAssignsIdsAndSeats(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.AddProfessor(1, "P"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "C"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(1, "G1", 10); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(2, "G2", 15); err != nil {
		t.Fatal(err)
	}
	b.AddRoom("R", false, 100)

	cc, err := b.AddClass(1, 1, false, 2, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if cc.Id != 0 {
		t.Errorf("first class id = %d, want 0", cc.Id)
	}
	if cc.SeatsRequired != 25 {
		t.Errorf("seatsRequired = %d, want 25", cc.SeatsRequired)
	}
}

func TestAddClassUnknownReferencesFail(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.AddProfessor(1, "P"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "C"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddClass(1, 1, false, 1, []int{99}); err == nil {
		t.Error("expected error for unknown group id")
	}
	if _, err := b.AddClass(1, 99, false, 1, nil); err == nil {
		t.Error("expected error for unknown course id")
	}
	if _, err := b.AddClass(99, 1, false, 1, nil); err == nil {
		t.Error("expected error for unknown professor id")
	}
}

func TestBuildRejectsOverlongDuration(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.AddProfessor(1, "P"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "C"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(1, "G", 10); err != nil {
		t.Fatal(err)
	}
	b.AddRoom("R", false, 100)
	if _, err := b.AddClass(1, 1, false, domain.DayHours, []int{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); err == nil {
		t.Error("expected DomainInvariant error for duration == DayHours")
	}
}

func TestBuildRejectsMissingLabRoom(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.AddProfessor(1, "P"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "C"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(1, "G", 10); err != nil {
		t.Fatal(err)
	}
	b.AddRoom("R", false, 100) // no lab room
	if _, err := b.AddClass(1, 1, true, 1, []int{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); err == nil {
		t.Error("expected DomainInvariant error for lab class with no lab room")
	}
}

func TestCourseClassOverlapPredicates(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.AddProfessor(1, "P1"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddProfessor(2, "P2"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "C"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(1, "G1", 10); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGroup(2, "G2", 10); err != nil {
		t.Fatal(err)
	}
	b.AddRoom("R", false, 100)

	a, err := b.AddClass(1, 1, false, 1, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	sameProf, err := b.AddClass(1, 1, false, 1, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	diffProfSameGroup, err := b.AddClass(2, 1, false, 1, []int{1})
	if err != nil {
		t.Fatal(err)
	}

	if !a.ProfessorOverlaps(sameProf) {
		t.Error("expected professor overlap")
	}
	if a.ProfessorOverlaps(diffProfSameGroup) {
		t.Error("expected no professor overlap")
	}
	if !a.GroupsOverlap(diffProfSameGroup) {
		t.Error("expected group overlap")
	}
	if a.GroupsOverlap(sameProf) {
		t.Error("expected no group overlap")
	}
}

func TestReservationIdxRoundTrip(t *testing.T) {
	nr := 4
	r := domain.NewReservation(nr, 2, 5, 1)
	idx := r.Idx()
	parsed := domain.ParseReservation(nr, idx)
	if diff := cmp.Diff(r, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReservationPoolMemoizes(t *testing.T) {
	pool := domain.NewReservationPool(3)
	a := pool.Get(5)
	b := pool.Get(5)
	if a != b {
		t.Errorf("expected pooled reservations to be equal, got %+v vs %+v", a, b)
	}
}
