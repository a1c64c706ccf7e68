package domain

// Course is a subject taught across one or more course classes.
type Course struct {
	Id   int
	Name string
}

// NewCourse allocates a course.
func NewCourse(id int, name string) *Course {
	return &Course{Id: id, Name: name}
}
