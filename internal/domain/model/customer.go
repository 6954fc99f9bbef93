package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/event"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
	"github.com/bibbank/cibil-service/pkg/events"
)

// Customer is the aggregate root for a bureau subject. Every account, loan,
// payment record, and score card in the system hangs off a customer, keyed
// by PAN.
type Customer struct {
	createdAt    time.Time
	updatedAt    time.Time
	dateOfBirth  time.Time
	fullName     string
	email        string
	phoneNumber  string
	address      string
	pan          valueobject.PAN
	domainEvents []events.DomainEvent
	id           uuid.UUID
}

// NewCustomer creates a new customer record and emits the onboarding event.
func NewCustomer(
	pan valueobject.PAN,
	fullName string,
	dateOfBirth time.Time,
	phoneNumber string,
	email string,
	address string,
) (*Customer, error) {
	if pan.IsZero() {
		return nil, fmt.Errorf("PAN is required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if dateOfBirth.IsZero() {
		return nil, fmt.Errorf("date of birth is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %s", email)
	}

	now := time.Now().UTC()

	customer := &Customer{
		id:          uuid.New(),
		pan:         pan,
		fullName:    strings.TrimSpace(fullName),
		dateOfBirth: dateOfBirth,
		phoneNumber: strings.TrimSpace(phoneNumber),
		email:       strings.TrimSpace(email),
		address:     strings.TrimSpace(address),
		createdAt:   now,
		updatedAt:   now,
	}

	customer.domainEvents = append(customer.domainEvents, event.NewCustomerOnboarded(
		customer.id, pan.Masked(), customer.fullName, now,
	))

	return customer, nil
}

// UpdateContact replaces the customer's contact details.
func (c *Customer) UpdateContact(phoneNumber, email, address string) error {
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email: %s", email)
	}
	if phoneNumber != "" {
		c.phoneNumber = strings.TrimSpace(phoneNumber)
	}
	if email != "" {
		c.email = strings.TrimSpace(email)
	}
	if address != "" {
		c.address = strings.TrimSpace(address)
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

// ReconstructCustomer rebuilds a Customer from persisted data (no validation, no events).
func ReconstructCustomer(
	id uuid.UUID,
	pan valueobject.PAN,
	fullName string,
	dateOfBirth time.Time,
	phoneNumber, email, address string,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:           id,
		pan:          pan,
		fullName:     fullName,
		dateOfBirth:  dateOfBirth,
		phoneNumber:  phoneNumber,
		email:        email,
		address:      address,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		domainEvents: make([]events.DomainEvent, 0),
	}
}

// --- Accessors ---

func (c *Customer) ID() uuid.UUID          { return c.id }
func (c *Customer) PAN() valueobject.PAN   { return c.pan }
func (c *Customer) FullName() string       { return c.fullName }
func (c *Customer) DateOfBirth() time.Time { return c.dateOfBirth }
func (c *Customer) PhoneNumber() string    { return c.phoneNumber }
func (c *Customer) Email() string          { return c.email }
func (c *Customer) Address() string        { return c.address }
func (c *Customer) CreatedAt() time.Time   { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time   { return c.updatedAt }

// DomainEvents returns all accumulated domain events and clears them.
func (c *Customer) DomainEvents() []events.DomainEvent {
	evts := c.domainEvents
	c.domainEvents = make([]events.DomainEvent, 0)
	return evts
}
