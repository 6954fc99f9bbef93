package valueobject

import "fmt"

// Grade is an immutable value object representing the letter grade assigned
// to a final CIBIL score.
type Grade struct {
	value string
}

var (
	GradeAPlus = Grade{value: "A+"}
	GradeA     = Grade{value: "A"}
	GradeBPlus = Grade{value: "B+"}
	GradeB     = Grade{value: "B"}
	GradeCPlus = Grade{value: "C+"}
	GradeC     = Grade{value: "C"}
	GradeDPlus = Grade{value: "D+"}
	GradeD     = Grade{value: "D"}
	GradeF     = Grade{value: "F"}
)

// GradeFromString reconstructs a Grade from its string representation.
func GradeFromString(s string) (Grade, error) {
	switch s {
	case "A+":
		return GradeAPlus, nil
	case "A":
		return GradeA, nil
	case "B+":
		return GradeBPlus, nil
	case "B":
		return GradeB, nil
	case "C+":
		return GradeCPlus, nil
	case "C":
		return GradeC, nil
	case "D+":
		return GradeDPlus, nil
	case "D":
		return GradeD, nil
	case "F":
		return GradeF, nil
	default:
		return Grade{}, fmt.Errorf("invalid grade: %s", s)
	}
}

// GradeFromScore derives the letter grade from a final score.
func GradeFromScore(score int) Grade {
	switch {
	case score >= 800:
		return GradeAPlus
	case score >= 750:
		return GradeA
	case score >= 700:
		return GradeBPlus
	case score >= 650:
		return GradeB
	case score >= 600:
		return GradeCPlus
	case score >= 550:
		return GradeC
	case score >= 500:
		return GradeDPlus
	case score >= 450:
		return GradeD
	default:
		return GradeF
	}
}

// String returns the string representation.
func (g Grade) String() string {
	return g.value
}

// IsZero returns true if the Grade has not been set.
func (g Grade) IsZero() bool {
	return g.value == ""
}

// Equal checks equality with another Grade.
func (g Grade) Equal(other Grade) bool {
	return g.value == other.value
}
