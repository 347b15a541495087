package core

import (
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Ledger owns the courses of a single student record, keyed by name.
//
// Every method is total: missing courses, out-of-range grades and empty
// ledgers resolve to zero values instead of errors. A Ledger is not safe for
// concurrent use; hosts that share one must serialize calls.
type Ledger struct {
	courses map[string]*Course
	logger  log.Logger
}

type Option func(*Ledger)

func WithLogger(logger log.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		courses: make(map[string]*Course),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddCourse creates the named course, replacing any existing course of the
// same name together with its grades.
func (l *Ledger) AddCourse(name string, credits int) {
	if _, exists := l.courses[name]; exists {
		level.Debug(l.logger).Log("msg", "replacing course", "course", name, "credits", credits)
	}
	l.courses[name] = newCourse(name, credits)
}

func (l *Ledger) AddGrade(courseName string, value float64) {
	c, ok := l.courses[courseName]
	if !ok {
		level.Debug(l.logger).Log("msg", "grade for unknown course ignored", "course", courseName)
		return
	}
	if !ValidGrade(value) {
		level.Debug(l.logger).Log("msg", "grade out of range ignored", "course", courseName, "value", value)
	}
	c.AddGrade(value)
}

// CourseAverage returns 0 both for unknown courses and for courses without
// grades. Use HasCourse to tell them apart.
func (l *Ledger) CourseAverage(courseName string) float64 {
	if c, ok := l.courses[courseName]; ok {
		return c.Average()
	}
	return 0.0
}

func (l *Ledger) GPA() float64 {
	return l.gpa("", nil)
}

// ProjectedGPA returns the GPA the ledger would have if value were recorded
// for courseName. The ledger itself is left untouched.
func (l *Ledger) ProjectedGPA(courseName string, value float64) float64 {
	c, ok := l.courses[courseName]
	if !ok || !ValidGrade(value) {
		return l.GPA()
	}

	what := newCourse(c.Name, c.Credits)
	what.grades = append(c.Grades(), value)
	return l.gpa(courseName, what)
}

// gpa aggregates grade points weighted by credits, summing in course name
// order so repeated calls give bit-identical results. When override is set
// it stands in for the course named name.
func (l *Ledger) gpa(name string, override *Course) float64 {
	if len(l.courses) == 0 {
		return 0.0
	}

	var points float64
	var credits int
	for _, n := range l.CourseNames() {
		c := l.courses[n]
		if override != nil && n == name {
			c = override
		}
		points += c.GradePoints() * float64(c.Credits)
		credits += c.Credits
	}

	if credits <= 0 {
		return 0.0
	}
	return points / float64(credits)
}

// CourseNames returns every course name in ascending order.
func (l *Ledger) CourseNames() []string {
	names := make([]string, 0, len(l.courses))
	for name := range l.courses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Ledger) CourseCredits(courseName string) int {
	if c, ok := l.courses[courseName]; ok {
		return c.Credits
	}
	return 0
}

func (l *Ledger) HasCourse(courseName string) bool {
	_, ok := l.courses[courseName]
	return ok
}

func (l *Ledger) Len() int {
	return len(l.courses)
}

func (l *Ledger) RemoveCourse(courseName string) {
	delete(l.courses, courseName)
}

func (l *Ledger) ClearAll() {
	l.courses = make(map[string]*Course)
}
