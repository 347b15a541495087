package core

// GradeBand is one row of the grade scale. Min is an inclusive lower bound.
type GradeBand struct {
	Min    float64
	Points float64
	Letter string
}

// scale is ordered highest threshold first; the first band whose Min is
// reached wins. Averages below the last band map to failingBand.
var scale = []GradeBand{
	{Min: 97, Points: 4.0, Letter: "A+"},
	{Min: 93, Points: 3.7, Letter: "A"},
	{Min: 90, Points: 3.3, Letter: "A-"},
	{Min: 87, Points: 3.0, Letter: "B+"},
	{Min: 83, Points: 2.7, Letter: "B"},
	{Min: 80, Points: 2.3, Letter: "B-"},
	{Min: 77, Points: 2.0, Letter: "C+"},
	{Min: 73, Points: 1.7, Letter: "C"},
	{Min: 70, Points: 1.3, Letter: "C-"},
	{Min: 67, Points: 1.0, Letter: "D+"},
	{Min: 65, Points: 0.7, Letter: "D"},
}

var failingBand = GradeBand{Min: 0, Points: 0.0, Letter: "F"}

// Scale returns a copy of the grade bands, highest threshold first.
func Scale() []GradeBand {
	out := make([]GradeBand, len(scale))
	copy(out, scale)
	return out
}

func bandFor(avg float64) GradeBand {
	for _, b := range scale {
		if avg >= b.Min {
			return b
		}
	}
	return failingBand
}

// GradePointsFor converts an average into grade points.
func GradePointsFor(avg float64) float64 {
	return bandFor(avg).Points
}

// LetterFor converts an average into a letter grade.
func LetterFor(avg float64) string {
	return bandFor(avg).Letter
}
