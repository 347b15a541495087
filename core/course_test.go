package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseAddGrade(t *testing.T) {
	c := newCourse("Algebra", 3)

	c.AddGrade(0)
	c.AddGrade(100)
	c.AddGrade(-0.1)
	c.AddGrade(100.1)
	c.AddGrade(math.NaN())
	c.AddGrade(math.Inf(1))

	assert.Equal(t, []float64{0, 100}, c.Grades())
	assert.Equal(t, 50.0, c.Average())
}

func TestCourseAverageEmpty(t *testing.T) {
	c := newCourse("Empty", 4)

	assert.Equal(t, 0.0, c.Average())
	assert.Equal(t, 0.0, c.GradePoints())
	assert.Equal(t, "F", c.LetterGrade())
}

func TestCourseGradePoints(t *testing.T) {
	c := newCourse("Physics", 4)
	c.AddGrade(90)
	c.AddGrade(96)

	assert.Equal(t, 93.0, c.Average())
	assert.Equal(t, 3.7, c.GradePoints())
	assert.Equal(t, "A", c.LetterGrade())
}

func TestCourseGradesIsCopy(t *testing.T) {
	c := newCourse("History", 3)
	c.AddGrade(80)

	grades := c.Grades()
	grades[0] = 10

	assert.Equal(t, 80.0, c.Average())
}
