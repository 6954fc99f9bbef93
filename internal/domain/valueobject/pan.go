package valueobject

import (
	"fmt"
	"regexp"
	"strings"
)

// panPattern is the Income Tax Department format: five letters, four digits, one letter.
var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// PAN is an immutable value object representing a Permanent Account Number,
// the identifier every bureau record is keyed on.
type PAN struct {
	value string
}

// NewPAN validates and creates a PAN. Input is upper-cased before validation.
func NewPAN(s string) (PAN, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !panPattern.MatchString(normalized) {
		return PAN{}, fmt.Errorf("invalid PAN format: %q", s)
	}
	return PAN{value: normalized}, nil
}

// String returns the normalized PAN.
func (p PAN) String() string {
	return p.value
}

// Masked returns the PAN with the middle digits hidden, for logs and reports.
func (p PAN) Masked() string {
	if len(p.value) != 10 {
		return ""
	}
	return p.value[:5] + "****" + p.value[9:]
}

// IsZero returns true if the PAN has not been set.
func (p PAN) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another PAN.
func (p PAN) Equal(other PAN) bool {
	return p.value == other.value
}
