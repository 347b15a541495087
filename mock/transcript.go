package mock

import "github.com/AntonioChieffallo/Student-Grade-Manager/core"

var Transcript = []struct {
	Name    string
	Credits int
	Grades  []float64
}{
	{
		Name:    "Calculus I",
		Credits: 4,
		Grades:  []float64{92, 95, 98},
	},
	{
		Name:    "Computer Science I",
		Credits: 3,
		Grades:  []float64{99, 97, 100},
	},
	{
		Name:    "English Composition",
		Credits: 3,
		Grades:  []float64{85, 88, 81},
	},
	{
		Name:    "General Chemistry",
		Credits: 4,
		Grades:  []float64{78, 74, 80},
	},
	{
		Name:    "Physical Education",
		Credits: 1,
		Grades:  []float64{100},
	},
	{
		Name:    "World History",
		Credits: 3,
		Grades:  []float64{68, 71, 65},
	},
}

// Seed loads every transcript course into l.
func Seed(l *core.Ledger) {
	for _, c := range Transcript {
		l.AddCourse(c.Name, c.Credits)
		for _, g := range c.Grades {
			l.AddGrade(c.Name, g)
		}
	}
}
