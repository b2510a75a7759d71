package model

// ElectiveSemester is the semester code reserved for optional subjects
const ElectiveSemester = 0

// Subject is an academic course requiring exactly one scheduled group.
type Subject struct {
	Id        string
	Name      string
	Semester  int
	Mandatory bool
	Groups    []Group
}

func (s Subject) Elective() bool {
	return s.Semester == ElectiveSemester
}
