// Package domain holds the immutable entities that make up a timetabling
// problem instance: professors, student groups, courses, rooms and the
// course-classes that tie them together.
package domain

// Professor teaches one or more course classes. Identity is by Id.
type Professor struct {
	Id      int
	Name    string
	classes []*CourseClass
}

// NewProfessor allocates a professor with the given id and name.
func NewProfessor(id int, name string) *Professor {
	return &Professor{Id: id, Name: name}
}

// addClass registers c as taught by this professor.
func (p *Professor) addClass(c *CourseClass) {
	p.classes = append(p.classes, c)
}

// Classes returns the classes taught by this professor, in registration order.
func (p *Professor) Classes() []*CourseClass {
	return p.classes
}
