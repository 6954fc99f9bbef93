package valueobject

import "fmt"

// LoanType is an immutable value object representing a loan product.
type LoanType struct {
	value string
}

// Known loan products.
var (
	LoanTypeHome      = LoanType{"HOME_LOAN"}
	LoanTypePersonal  = LoanType{"PERSONAL_LOAN"}
	LoanTypeCar       = LoanType{"CAR_LOAN"}
	LoanTypeEducation = LoanType{"EDUCATION_LOAN"}
	LoanTypeBusiness  = LoanType{"BUSINESS_LOAN"}
	LoanTypeGold      = LoanType{"GOLD_LOAN"}
)

var knownLoanTypes = map[string]LoanType{
	"HOME_LOAN":      LoanTypeHome,
	"PERSONAL_LOAN":  LoanTypePersonal,
	"CAR_LOAN":       LoanTypeCar,
	"EDUCATION_LOAN": LoanTypeEducation,
	"BUSINESS_LOAN":  LoanTypeBusiness,
	"GOLD_LOAN":      LoanTypeGold,
}

// NewLoanType validates and creates a LoanType from a string.
func NewLoanType(s string) (LoanType, error) {
	lt, ok := knownLoanTypes[s]
	if !ok {
		return LoanType{}, fmt.Errorf("unknown loan type %q", s)
	}
	return lt, nil
}

// String returns the string representation of the loan type.
func (t LoanType) String() string {
	return t.value
}

// IsZero returns true if the loan type is empty.
func (t LoanType) IsZero() bool {
	return t.value == ""
}

// Equal returns true if two loan types are equal.
func (t LoanType) Equal(other LoanType) bool {
	return t.value == other.value
}
