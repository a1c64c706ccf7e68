package domain

import "fmt"

// Configuration is the immutable problem instance a Schedule is built
// against: all professors, courses, rooms, student groups and course
// classes, plus the derived quantities the optimizer core needs on every
// hot path (NumberOfRooms, NumberOfClasses).
type Configuration struct {
	Professors    []*Professor
	Courses       []*Course
	Rooms         []*Room
	Groups        []*StudentsGroup
	CourseClasses []*CourseClass // configuration order; Schedule iterates classes in this order (I4)
}

// NumberOfRooms is nr, the width of the room dimension of the weekly grid.
func (c *Configuration) NumberOfRooms() int {
	return len(c.Rooms)
}

// NumberOfClasses is |classes|.
func (c *Configuration) NumberOfClasses() int {
	return len(c.CourseClasses)
}

// SlotsCount is the size of a Schedule's slots array: D*H*nr.
func (c *Configuration) SlotsCount() int {
	return DaysNum * DayHours * c.NumberOfRooms()
}

// Builder assembles a Configuration from parsed input, owning the id
// counters for Room and CourseClass (§9 Design Notes: "id counters are
// owned by a per-parse factory to avoid process-global mutable state").
// A Builder must be discarded after Build; a new parse uses a new Builder.
type Builder struct {
	rooms   RoomFactory
	classes ClassFactory

	cfg Configuration

	professorsByID map[int]*Professor
	coursesByID    map[int]*Course
	groupsByID     map[int]*StudentsGroup
}

// NewBuilder creates an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		professorsByID: make(map[int]*Professor),
		coursesByID:    make(map[int]*Course),
		groupsByID:     make(map[int]*StudentsGroup),
	}
}

// AddProfessor registers a professor with an explicit id from the input.
func (b *Builder) AddProfessor(id int, name string) error {
	if _, exists := b.professorsByID[id]; exists {
		return fmt.Errorf("domain: duplicate professor id %d", id)
	}
	p := NewProfessor(id, name)
	b.professorsByID[id] = p
	b.cfg.Professors = append(b.cfg.Professors, p)
	return nil
}

// AddCourse registers a course with an explicit id from the input.
func (b *Builder) AddCourse(id int, name string) error {
	if _, exists := b.coursesByID[id]; exists {
		return fmt.Errorf("domain: duplicate course id %d", id)
	}
	c := NewCourse(id, name)
	b.coursesByID[id] = c
	b.cfg.Courses = append(b.cfg.Courses, c)
	return nil
}

// AddGroup registers a students group with an explicit id from the input.
func (b *Builder) AddGroup(id int, name string, size int) error {
	if _, exists := b.groupsByID[id]; exists {
		return fmt.Errorf("domain: duplicate group id %d", id)
	}
	g := NewStudentsGroup(id, name, size)
	b.groupsByID[id] = g
	b.cfg.Groups = append(b.cfg.Groups, g)
	return nil
}

// AddRoom registers a room; its id is auto-assigned in input order.
func (b *Builder) AddRoom(name string, lab bool, seats int) *Room {
	r := b.rooms.NewRoom(name, lab, seats)
	b.cfg.Rooms = append(b.cfg.Rooms, r)
	return r
}

// AddClass registers a course class referencing a professor id, a course
// id and one or more group ids, all of which must already have been
// registered. Returns a ConfigParse-kind error on unknown references.
func (b *Builder) AddClass(professorID, courseID int, labRequired bool, duration int, groupIDs []int) (*CourseClass, error) {
	prof, ok := b.professorsByID[professorID]
	if !ok {
		return nil, fmt.Errorf("domain: class references unknown professor id %d", professorID)
	}
	course, ok := b.coursesByID[courseID]
	if !ok {
		return nil, fmt.Errorf("domain: class references unknown course id %d", courseID)
	}
	if len(groupIDs) == 0 {
		return nil, fmt.Errorf("domain: class for course %d has no student groups", courseID)
	}
	groups := make([]*StudentsGroup, 0, len(groupIDs))
	for _, gid := range groupIDs {
		g, ok := b.groupsByID[gid]
		if !ok {
			return nil, fmt.Errorf("domain: class references unknown group id %d", gid)
		}
		groups = append(groups, g)
	}
	cc := b.classes.NewClass(prof, course, labRequired, duration, groups)
	b.cfg.CourseClasses = append(b.cfg.CourseClasses, cc)
	return cc, nil
}

// Build validates and returns the assembled Configuration.
//
// A class whose duration is not strictly less than DayHours, or whose
// SeatsRequired exceeds every room's Seats (every lab room's Seats, for a
// class that requires a lab), is a DomainInvariant failure (§7 Error
// Handling Design): no cell of the grid could ever satisfy such a class.
func (b *Builder) Build() (*Configuration, error) {
	for _, cc := range b.cfg.CourseClasses {
		if cc.Duration >= DayHours {
			return nil, fmt.Errorf("domain: class %d duration %d exceeds day length %d", cc.Id, cc.Duration, DayHours)
		}
		if cc.LabRequired {
			if !anyRoomFits(b.cfg.Rooms, cc, true) {
				return nil, fmt.Errorf("domain: class %d requires a lab room with %d seats but none exists", cc.Id, cc.SeatsRequired)
			}
		} else if !anyRoomFits(b.cfg.Rooms, cc, false) {
			return nil, fmt.Errorf("domain: class %d requires a room with %d seats but none exists", cc.Id, cc.SeatsRequired)
		}
	}
	return &b.cfg, nil
}

func anyRoomFits(rooms []*Room, cc *CourseClass, requireLab bool) bool {
	for _, r := range rooms {
		if requireLab && !r.Lab {
			continue
		}
		if r.Seats >= cc.SeatsRequired {
			return true
		}
	}
	return false
}
