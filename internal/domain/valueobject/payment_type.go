package valueobject

import "fmt"

// PaymentType is an immutable value object representing the kind of
// obligation a payment record settles.
type PaymentType struct {
	value string
}

var (
	PaymentTypeLoanEMI     = PaymentType{"LOAN_EMI"}
	PaymentTypeCreditCard  = PaymentType{"CREDIT_CARD"}
	PaymentTypeUtilityBill = PaymentType{"UTILITY_BILL"}
	PaymentTypeOther       = PaymentType{"OTHER"}
)

// NewPaymentType validates and creates a PaymentType from a string.
func NewPaymentType(s string) (PaymentType, error) {
	switch s {
	case "LOAN_EMI":
		return PaymentTypeLoanEMI, nil
	case "CREDIT_CARD":
		return PaymentTypeCreditCard, nil
	case "UTILITY_BILL":
		return PaymentTypeUtilityBill, nil
	case "OTHER":
		return PaymentTypeOther, nil
	default:
		return PaymentType{}, fmt.Errorf("unknown payment type %q", s)
	}
}

// String returns the string representation of the payment type.
func (t PaymentType) String() string {
	return t.value
}

// IsZero returns true if the payment type is empty.
func (t PaymentType) IsZero() bool {
	return t.value == ""
}

// Equal returns true if two payment types are equal.
func (t PaymentType) Equal(other PaymentType) bool {
	return t.value == other.value
}
