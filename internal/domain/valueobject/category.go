package valueobject

import "fmt"

// ScoreCategory is an immutable value object classifying a final score into
// the band lenders quote to applicants. It is a coarser scale than Grade.
type ScoreCategory struct {
	value string
}

var (
	CategoryExcellent = ScoreCategory{value: "Excellent"}
	CategoryGood      = ScoreCategory{value: "Good"}
	CategoryFair      = ScoreCategory{value: "Fair"}
	CategoryPoor      = ScoreCategory{value: "Poor"}
	CategoryVeryPoor  = ScoreCategory{value: "Very Poor"}
)

// ScoreCategoryFromString reconstructs a ScoreCategory from its string representation.
func ScoreCategoryFromString(s string) (ScoreCategory, error) {
	switch s {
	case "Excellent":
		return CategoryExcellent, nil
	case "Good":
		return CategoryGood, nil
	case "Fair":
		return CategoryFair, nil
	case "Poor":
		return CategoryPoor, nil
	case "Very Poor":
		return CategoryVeryPoor, nil
	default:
		return ScoreCategory{}, fmt.Errorf("invalid score category: %s", s)
	}
}

// CategoryFromScore derives the category from a final score.
func CategoryFromScore(score int) ScoreCategory {
	switch {
	case score >= 750:
		return CategoryExcellent
	case score >= 700:
		return CategoryGood
	case score >= 650:
		return CategoryFair
	case score >= 600:
		return CategoryPoor
	default:
		return CategoryVeryPoor
	}
}

// String returns the string representation.
func (c ScoreCategory) String() string {
	return c.value
}

// IsZero returns true if the category has not been set.
func (c ScoreCategory) IsZero() bool {
	return c.value == ""
}

// Equal checks equality with another ScoreCategory.
func (c ScoreCategory) Equal(other ScoreCategory) bool {
	return c.value == other.value
}
