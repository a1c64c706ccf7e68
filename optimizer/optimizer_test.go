package optimizer_test

import (
	"testing"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
	"github.com/cpmech/gaschedule/optimizer"
	"github.com/cpmech/gaschedule/schedule"
	"github.com/cpmech/gosl/rnd"
)

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// buildPrototype assembles a small configuration with enough slack
// (3 rooms x 5 days x 12 hours) that a handful of generations can make
// visible progress without an expensive search.
func buildPrototype(t *testing.T) *schedule.Schedule {
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
	return schedule.NewPrototype(cfg, criteria.DefaultWeights())
}

func smallOptions() optimizer.Options {
	opts := optimizer.DefaultOptions()
	opts.PopulationSize = 12
	opts.MaxGenerations = 8
	opts.Seed = 1
	return opts
}

func checkResultValid(t *testing.T, name string, result optimizer.Result, proto *schedule.Schedule) {
	t.Helper()
	if result.Best == nil {
		t.Fatalf("%s: Result.Best is nil", name)
	}
	nr := proto.Configuration.NumberOfRooms()
	for pos, cc := range proto.Configuration.CourseClasses {
		if result.Best.StartIndex(pos) < 0 {
			t.Fatalf("%s: class %d unplaced in best", name, pos)
		}
		r := result.Best.Reservation(pos)
		if r.Day < 0 || r.Day >= domain.DaysNum || r.Room < 0 || r.Room >= nr || r.Time < 0 || r.Time > domain.DayHours-cc.Duration {
			t.Fatalf("%s: class %d reservation %+v out of bounds", name, pos, r)
		}
	}
}

func TestVariantsRunToCompletion(t *testing.T) {
	variants := map[string]optimizer.Variant{
		"nsga2":   optimizer.NSGA2{},
		"nsga3":   optimizer.NewNSGA3(),
		"apnsga3": optimizer.NewAPNsgaIII(),
		"amga2":   optimizer.NewAMGA2(),
		"cso":     optimizer.NewCSO(),
		"fpa":     optimizer.NewFPA(),
		"dlba":    optimizer.NewDLBA(),
		"gaqpso":  optimizer.NewGAQPSO(),
		"hgasso":  optimizer.NewHGASSO(),
		"emosoa":  optimizer.NewEMoSOA(),
		"rqiea":   optimizer.NewRQIEA(),
	}

	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			proto := buildPrototype(t)
			result := optimizer.Run(v, proto, smallOptions())
			checkResultValid(t, name, result, proto)
		})
	}
}

func TestNSGA2LeaderPrefersLowerRank(t *testing.T) {
	proto := buildPrototype(t)
	opts := smallOptions()
	v := optimizer.NSGA2{}
	rnd.Init(1)
	pop := v.Initialize(proto, opts)
	leader := v.Leader(pop)
	for _, p := range pop {
		if p.Rank < leader.Rank {
			t.Fatalf("Leader picked rank %d but population has rank %d", leader.Rank, p.Rank)
		}
	}
}

func TestRunFrontZeroMonotone(t *testing.T) {
	proto := buildPrototype(t)
	opts := smallOptions()
	opts.MaxGenerations = 20
	result := optimizer.Run(optimizer.NSGA2{}, proto, opts)
	if result.Best.Fitness < 0 {
		t.Fatalf("unexpected negative fitness %v", result.Best.Fitness)
	}

	// Same seed, fewer generations: that run is a prefix of this one, so
	// its best can never beat the longer run's best.
	shortOpts := smallOptions()
	shortOpts.MaxGenerations = 10
	short := optimizer.Run(optimizer.NSGA2{}, proto, shortOpts)
	if result.Best.Fitness < short.Best.Fitness {
		t.Fatalf("best fitness after %d generations (%v) is below best after %d (%v)",
			opts.MaxGenerations, result.Best.Fitness, shortOpts.MaxGenerations, short.Best.Fitness)
	}
}
