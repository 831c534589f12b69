package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store combines the query surface with a transaction boundary. Checkout
// needs "read cart items + read product facts + insert order + delete cart
// items" to be atomic; ExecTx is that boundary.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore implements Store on a pgx connection pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

var _ Store = (*SQLStore)(nil)

// NewStore creates a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx runs fn inside a database transaction. If fn returns an error, the
// transaction is rolled back and that error is returned unchanged so domain
// errors survive the boundary.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
