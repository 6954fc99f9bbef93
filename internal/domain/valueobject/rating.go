package valueobject

import "fmt"

// FactorRating is an immutable value object classifying a single factor's
// 0-100 raw score in the breakdown. Distinct from ScoreCategory, which
// classifies the final score.
type FactorRating struct {
	value string
}

var (
	RatingExcellent = FactorRating{value: "Excellent"}
	RatingVeryGood  = FactorRating{value: "Very Good"}
	RatingGood      = FactorRating{value: "Good"}
	RatingFair      = FactorRating{value: "Fair"}
	RatingAverage   = FactorRating{value: "Average"}
	RatingPoor      = FactorRating{value: "Poor"}
)

// FactorRatingFromString reconstructs a FactorRating from its string representation.
func FactorRatingFromString(s string) (FactorRating, error) {
	switch s {
	case "Excellent":
		return RatingExcellent, nil
	case "Very Good":
		return RatingVeryGood, nil
	case "Good":
		return RatingGood, nil
	case "Fair":
		return RatingFair, nil
	case "Average":
		return RatingAverage, nil
	case "Poor":
		return RatingPoor, nil
	default:
		return FactorRating{}, fmt.Errorf("invalid factor rating: %s", s)
	}
}

// RatingFromScore derives the rating from a factor's raw 0-100 score.
func RatingFromScore(score float64) FactorRating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingVeryGood
	case score >= 70:
		return RatingGood
	case score >= 60:
		return RatingFair
	case score >= 50:
		return RatingAverage
	default:
		return RatingPoor
	}
}

// String returns the string representation.
func (r FactorRating) String() string {
	return r.value
}

// IsZero returns true if the rating has not been set.
func (r FactorRating) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another FactorRating.
func (r FactorRating) Equal(other FactorRating) bool {
	return r.value == other.value
}
