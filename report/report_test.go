package report

import (
	"strings"
	"testing"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
	"github.com/cpmech/gaschedule/schedule"
)

func buildTestSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()
	b := domain.NewBuilder()
	if err := b.AddProfessor(1, "Ada Lovelace"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCourse(1, "Algorithms"); err != nil {
		t.Fatal(err)
	}
	b.AddRoom("R101", false, 40)
	if err := b.AddGroup(1, "CS1", 30); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddClass(1, 1, false, 2, []int{1}); err != nil {
		t.Fatal(err)
	}
	cfg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return schedule.NewPrototype(cfg, criteria.DefaultWeights())
}

func TestRenderProducesOneTablePerRoom(t *testing.T) {
	s := buildTestSchedule(t)
	var buf strings.Builder
	if err := Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "R101") {
		t.Error("expected room name R101 in output")
	}
	if strings.Count(out, "<table>") != 1 {
		t.Errorf("expected exactly one table (one room), got %d", strings.Count(out, "<table>"))
	}
}
