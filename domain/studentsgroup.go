package domain

// StudentsGroup is a cohort of students that attends classes together.
// Identity is by Id.
type StudentsGroup struct {
	Id      int
	Name    string
	Size    int
	classes []*CourseClass
}

// NewStudentsGroup allocates a students group.
func NewStudentsGroup(id int, name string, size int) *StudentsGroup {
	return &StudentsGroup{Id: id, Name: name, Size: size}
}

func (g *StudentsGroup) addClass(c *CourseClass) {
	g.classes = append(g.classes, c)
}

// Classes returns the classes attended by this group, in registration order.
func (g *StudentsGroup) Classes() []*CourseClass {
	return g.classes
}
