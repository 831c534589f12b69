package repository

import "context"

const createCustomer = `
INSERT INTO customer (username, password_hash)
VALUES ($1, $2)
RETURNING id, username, password_hash, created_at
`

// CreateCustomerParams holds the arguments for CreateCustomer.
type CreateCustomerParams struct {
	Username     string
	PasswordHash string
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, createCustomer, arg.Username, arg.PasswordHash)
	var c Customer
	err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.CreatedAt)
	return c, err
}

const getCustomerByUsername = `
SELECT id, username, password_hash, created_at
FROM customer
WHERE username = $1
`

func (q *Queries) GetCustomerByUsername(ctx context.Context, username string) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomerByUsername, username)
	var c Customer
	err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.CreatedAt)
	return c, err
}

const updateCustomerPassword = `
UPDATE customer
SET password_hash = $2
WHERE id = $1
`

// UpdateCustomerPasswordParams holds the arguments for UpdateCustomerPassword.
type UpdateCustomerPasswordParams struct {
	ID           int64
	PasswordHash string
}

func (q *Queries) UpdateCustomerPassword(ctx context.Context, arg UpdateCustomerPasswordParams) error {
	_, err := q.db.Exec(ctx, updateCustomerPassword, arg.ID, arg.PasswordHash)
	return err
}

const deleteCustomer = `
DELETE FROM customer
WHERE id = $1
`

func (q *Queries) DeleteCustomer(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCustomer, id)
	return err
}
