package domain

// CourseClass is an indivisible unit of teaching: a professor, a course,
// the student groups attending it, a duration in hours and whether it
// requires a lab room. Id is assigned monotonically by a ClassFactory
// (mirrors RoomFactory, §9 Design Notes).
type CourseClass struct {
	Id            int
	Professor     *Professor
	Course        *Course
	LabRequired   bool
	Duration      int
	Groups        []*StudentsGroup
	SeatsRequired int
}

// ClassFactory assigns monotonically increasing ids to classes built for a
// single configuration parse.
type ClassFactory struct {
	next int
}

// NewClass builds a course class, registers it with its professor and
// student groups, and computes SeatsRequired as the sum of group sizes.
func (f *ClassFactory) NewClass(professor *Professor, course *Course, labRequired bool, duration int, groups []*StudentsGroup) *CourseClass {
	if duration < 1 {
		duration = 1
	}
	seats := 0
	for _, g := range groups {
		seats += g.Size
	}
	c := &CourseClass{
		Id:            f.next,
		Professor:     professor,
		Course:        course,
		LabRequired:   labRequired,
		Duration:      duration,
		Groups:        groups,
		SeatsRequired: seats,
	}
	f.next++
	professor.addClass(c)
	for _, g := range groups {
		g.addClass(c)
	}
	return c
}

// ProfessorOverlaps reports whether this class and other share a professor.
func (c *CourseClass) ProfessorOverlaps(other *CourseClass) bool {
	return c.Professor.Id == other.Professor.Id
}

// GroupsOverlap reports whether this class and other share at least one
// student group.
func (c *CourseClass) GroupsOverlap(other *CourseClass) bool {
	for _, g := range c.Groups {
		for _, h := range other.Groups {
			if g.Id == h.Id {
				return true
			}
		}
	}
	return false
}
