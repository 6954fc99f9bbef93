package valueobject

import "fmt"

// CardType is an immutable value object representing a credit card network.
type CardType struct {
	value string
}

// Known card networks.
var (
	CardTypeVisa       = CardType{"VISA"}
	CardTypeMastercard = CardType{"MASTERCARD"}
	CardTypeRuPay      = CardType{"RUPAY"}
	CardTypeAmex       = CardType{"AMEX"}
)

var knownCardTypes = map[string]CardType{
	"VISA":       CardTypeVisa,
	"MASTERCARD": CardTypeMastercard,
	"RUPAY":      CardTypeRuPay,
	"AMEX":       CardTypeAmex,
}

// NewCardType validates and creates a CardType from a string.
func NewCardType(s string) (CardType, error) {
	ct, ok := knownCardTypes[s]
	if !ok {
		return CardType{}, fmt.Errorf("unknown card type %q", s)
	}
	return ct, nil
}

// String returns the string representation of the card type.
func (t CardType) String() string {
	return t.value
}

// IsZero returns true if the card type is empty.
func (t CardType) IsZero() bool {
	return t.value == ""
}

// Equal returns true if two card types are equal.
func (t CardType) Equal(other CardType) bool {
	return t.value == other.value
}
