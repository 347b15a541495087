package core

type CourseReport struct {
	Name        string    `json:"name"`
	Credits     int       `json:"credits"`
	Grades      []float64 `json:"grades"`
	Average     float64   `json:"average"`
	GradePoints float64   `json:"grade_points"`
	Letter      string    `json:"letter"`
}

type Report struct {
	Courses      []CourseReport `json:"courses"`
	TotalCredits int            `json:"total_credits"`
	GPA          float64        `json:"gpa"`
}

func (c *Course) report() CourseReport {
	return CourseReport{
		Name:        c.Name,
		Credits:     c.Credits,
		Grades:      c.Grades(),
		Average:     c.Average(),
		GradePoints: c.GradePoints(),
		Letter:      c.LetterGrade(),
	}
}

// CourseReport snapshots a single course. ok is false when the course does
// not exist.
func (l *Ledger) CourseReport(courseName string) (CourseReport, bool) {
	c, ok := l.courses[courseName]
	if !ok {
		return CourseReport{}, false
	}
	return c.report(), true
}

// Report snapshots every course in name order along with the aggregate GPA.
func (l *Ledger) Report() Report {
	r := Report{
		Courses: make([]CourseReport, 0, len(l.courses)),
		GPA:     l.GPA(),
	}
	for _, name := range l.CourseNames() {
		c := l.courses[name]
		r.Courses = append(r.Courses, c.report())
		r.TotalCredits += c.Credits
	}
	return r
}
