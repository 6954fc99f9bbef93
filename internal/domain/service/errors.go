package service

import "errors"

// Validation failures surfaced by the engine. Input validation is eager and
// fails the whole calculation; there are no partial results. "No history"
// conditions (zero payments, zero limit, no accounts) are neutral-score
// policies, not errors.
var (
	// ErrMissingRequiredField signals an absent declarative-mode fact.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMissingWeightFactor signals an absent factor weight in a mode with
	// no weight defaults.
	ErrMissingWeightFactor = errors.New("missing weight factor")

	// ErrZeroTotalWeight signals that weight normalization would divide by zero.
	ErrZeroTotalWeight = errors.New("total weight is zero")

	// ErrPaymentCountMismatch signals that on-time, late, and missed counts
	// do not add up to the total.
	ErrPaymentCountMismatch = errors.New("payment counts do not add up to total")

	// ErrNegativeValue signals a negative quantity where only nonnegative
	// values make sense.
	ErrNegativeValue = errors.New("negative value")
)
