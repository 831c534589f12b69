package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmorrow/cartwheel/internal/auth"
	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/repository"
)

// AuthService gates login and resolves bearer tokens back to customers.
type AuthService interface {
	// Login verifies the credentials and issues a bearer token. An unknown
	// username and a wrong password fail identically.
	Login(ctx context.Context, username string, password domain.PlainPassword) (string, error)

	// ResolvePrincipal validates a token and returns the customer it was
	// issued for.
	ResolvePrincipal(ctx context.Context, token string) (*domain.Customer, error)
}

type authService struct {
	repo   repository.Querier
	tokens *auth.TokenProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(repo repository.Querier, tokens *auth.TokenProvider) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

// Login verifies the credentials and issues a bearer token.
func (s *authService) Login(ctx context.Context, username string, password domain.PlainPassword) (string, error) {
	customer, err := s.repo.GetCustomerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same failure as a wrong password; usernames are not enumerable.
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get customer: %w", err)
	}

	if err := auth.Verify(domain.EncryptedPassword(customer.PasswordHash), password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(customer.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// ResolvePrincipal validates a token and returns the customer it was issued for.
func (s *authService) ResolvePrincipal(ctx context.Context, token string) (*domain.Customer, error) {
	username, err := s.tokens.Resolve(token)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.GetCustomerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Account deleted after the token was issued.
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &domain.Customer{
		ID:       customer.ID,
		Username: customer.Username,
		Password: domain.EncryptedPassword(customer.PasswordHash),
	}, nil
}
