package valueobject

import "fmt"

// PaymentStatus is an immutable value object classifying how a single
// obligation was settled. The scorer buckets these into on-time, late,
// and missed when weighing payment history.
type PaymentStatus struct {
	value string
}

var (
	PaymentOnTime     = PaymentStatus{"ON_TIME"}
	PaymentLate1To30  = PaymentStatus{"LATE_1_30"}
	PaymentLate31To60 = PaymentStatus{"LATE_31_60"}
	PaymentLate61To90 = PaymentStatus{"LATE_61_90"}
	PaymentLate90Plus = PaymentStatus{"LATE_90_PLUS"}
	PaymentMissed     = PaymentStatus{"MISSED"}
	PaymentDefaulted  = PaymentStatus{"DEFAULTED"}
)

var knownPaymentStatuses = map[string]PaymentStatus{
	"ON_TIME":      PaymentOnTime,
	"LATE_1_30":    PaymentLate1To30,
	"LATE_31_60":   PaymentLate31To60,
	"LATE_61_90":   PaymentLate61To90,
	"LATE_90_PLUS": PaymentLate90Plus,
	"MISSED":       PaymentMissed,
	"DEFAULTED":    PaymentDefaulted,
}

// NewPaymentStatus validates and creates a PaymentStatus from a string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	ps, ok := knownPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("unknown payment status %q", s)
	}
	return ps, nil
}

// IsOnTime returns true if the payment was settled by its due date.
func (s PaymentStatus) IsOnTime() bool {
	return s.value == "ON_TIME"
}

// IsLate returns true for any of the late buckets, regardless of severity.
func (s PaymentStatus) IsLate() bool {
	switch s.value {
	case "LATE_1_30", "LATE_31_60", "LATE_61_90", "LATE_90_PLUS":
		return true
	default:
		return false
	}
}

// IsMissed returns true if the obligation was never settled. Defaults count
// as missed for scoring purposes.
func (s PaymentStatus) IsMissed() bool {
	return s.value == "MISSED" || s.value == "DEFAULTED"
}

// String returns the string representation of the payment status.
func (s PaymentStatus) String() string {
	return s.value
}

// IsZero returns true if the payment status is empty.
func (s PaymentStatus) IsZero() bool {
	return s.value == ""
}

// Equal returns true if two payment statuses are equal.
func (s PaymentStatus) Equal(other PaymentStatus) bool {
	return s.value == other.value
}
