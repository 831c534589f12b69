package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jmorrow/cartwheel/internal/auth"
	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// CustomerService provides account management: signup, lookup, password
// change and deletion.
type CustomerService interface {
	// Register creates an account, storing only the encrypted password.
	Register(ctx context.Context, username string, password domain.PlainPassword) (*domain.Customer, error)

	// GetByUsername looks a customer up by their external identity.
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)

	// UpdatePassword re-encrypts the secret after checking the current one.
	UpdatePassword(ctx context.Context, customer *domain.Customer, current, next domain.PlainPassword) error

	// Delete removes the account.
	Delete(ctx context.Context, customerID int64) error
}

type customerService struct {
	repo repository.Querier
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.Querier) CustomerService {
	return &customerService{repo: repo}
}

// Register creates an account.
func (s *customerService) Register(ctx context.Context, username string, password domain.PlainPassword) (*domain.Customer, error) {
	if username == "" {
		return nil, domain.Invalid("customer.register", "username is required")
	}

	encrypted, err := auth.Encrypt(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Invalid("customer.register", err.Error())
		}
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}

	row, err := s.repo.CreateCustomer(ctx, repository.CreateCustomerParams{
		Username:     username,
		PasswordHash: string(encrypted),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &domain.Customer{
		ID:       row.ID,
		Username: row.Username,
		Password: domain.EncryptedPassword(row.PasswordHash),
	}, nil
}

// GetByUsername looks a customer up by their external identity.
func (s *customerService) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	row, err := s.repo.GetCustomerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &domain.Customer{
		ID:       row.ID,
		Username: row.Username,
		Password: domain.EncryptedPassword(row.PasswordHash),
	}, nil
}

// UpdatePassword re-encrypts the secret after checking the current one.
func (s *customerService) UpdatePassword(ctx context.Context, customer *domain.Customer, current, next domain.PlainPassword) error {
	if err := auth.Verify(customer.Password, current); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	encrypted, err := auth.Encrypt(next)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return domain.Invalid("customer.update_password", err.Error())
		}
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	if err := s.repo.UpdateCustomerPassword(ctx, repository.UpdateCustomerPasswordParams{
		ID:           customer.ID,
		PasswordHash: string(encrypted),
	}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Delete removes the account.
func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	if err := s.repo.DeleteCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
