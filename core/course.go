package core

const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

type Course struct {
	Name    string
	Credits int
	grades  []float64
}

func newCourse(name string, credits int) *Course {
	return &Course{
		Name:    name,
		Credits: credits,
	}
}

// ValidGrade reports whether v can be recorded. NaN never is.
func ValidGrade(v float64) bool {
	return v >= MinGrade && v <= MaxGrade
}

// AddGrade records v. Values outside [0, 100] are dropped without error.
func (c *Course) AddGrade(v float64) {
	if !ValidGrade(v) {
		return
	}
	c.grades = append(c.grades, v)
}

// Grades returns a copy of the recorded grades in insertion order.
func (c *Course) Grades() []float64 {
	out := make([]float64, len(c.grades))
	copy(out, c.grades)
	return out
}

func (c *Course) Average() float64 {
	if len(c.grades) == 0 {
		return 0.0
	}

	var total float64
	for _, g := range c.grades {
		total += g
	}
	return total / float64(len(c.grades))
}

func (c *Course) GradePoints() float64 {
	return GradePointsFor(c.Average())
}

func (c *Course) LetterGrade() string {
	return LetterFor(c.Average())
}
