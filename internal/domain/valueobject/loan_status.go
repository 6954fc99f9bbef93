package valueobject

import "fmt"

// LoanStatus is an immutable value object representing the lifecycle state of a loan.
type LoanStatus struct {
	value string
}

var (
	LoanStatusActive    = LoanStatus{"ACTIVE"}
	LoanStatusClosed    = LoanStatus{"CLOSED"}
	LoanStatusOverdue   = LoanStatus{"OVERDUE"}
	LoanStatusDefaulted = LoanStatus{"DEFAULTED"}
)

// NewLoanStatus validates and creates a LoanStatus from a string.
func NewLoanStatus(s string) (LoanStatus, error) {
	switch s {
	case "ACTIVE":
		return LoanStatusActive, nil
	case "CLOSED":
		return LoanStatusClosed, nil
	case "OVERDUE":
		return LoanStatusOverdue, nil
	case "DEFAULTED":
		return LoanStatusDefaulted, nil
	default:
		return LoanStatus{}, fmt.Errorf("unknown loan status %q", s)
	}
}

// String returns the string representation of the loan status.
func (s LoanStatus) String() string {
	return s.value
}

// IsActive returns true if the loan is currently being serviced.
func (s LoanStatus) IsActive() bool {
	return s.value == "ACTIVE"
}

// IsZero returns true if the loan status is empty.
func (s LoanStatus) IsZero() bool {
	return s.value == ""
}

// Equal returns true if two loan statuses are equal.
func (s LoanStatus) Equal(other LoanStatus) bool {
	return s.value == other.value
}
