package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// CustomerRepository implements port.CustomerRepository using PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Save persists a customer using an upsert keyed on id. PAN and date of
// birth are immutable once written; only contact details may change.
func (r *CustomerRepository) Save(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (
			id, pan_card_number, full_name, date_of_birth,
			phone_number, email, address, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID(),
		customer.PAN().String(),
		customer.FullName(),
		customer.DateOfBirth(),
		customer.PhoneNumber(),
		customer.Email(),
		customer.Address(),
		customer.CreatedAt(),
		customer.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	return nil
}

// FindByID retrieves a customer by its unique identifier.
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, pan_card_number, full_name, date_of_birth,
			phone_number, email, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	return r.scanCustomer(r.pool.QueryRow(ctx, query, id))
}

// FindByPAN retrieves a customer by PAN card number.
func (r *CustomerRepository) FindByPAN(ctx context.Context, pan valueobject.PAN) (*model.Customer, error) {
	query := `
		SELECT id, pan_card_number, full_name, date_of_birth,
			phone_number, email, address, created_at, updated_at
		FROM customers
		WHERE pan_card_number = $1
	`

	return r.scanCustomer(r.pool.QueryRow(ctx, query, pan.String()))
}

func (r *CustomerRepository) scanCustomer(row pgx.Row) (*model.Customer, error) {
	var (
		id          uuid.UUID
		panStr      string
		fullName    string
		dateOfBirth time.Time
		phoneNumber string
		email       string
		address     string
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := row.Scan(
		&id, &panStr, &fullName, &dateOfBirth,
		&phoneNumber, &email, &address, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}

	pan, err := valueobject.NewPAN(panStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PAN: %w", err)
	}

	return model.ReconstructCustomer(
		id, pan, fullName, dateOfBirth,
		phoneNumber, email, address, createdAt, updatedAt,
	), nil
}
