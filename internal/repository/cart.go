package repository

import "context"

const createCartItem = `
INSERT INTO cart_item (customer_id, product_id, quantity)
VALUES ($1, $2, $3)
RETURNING id, customer_id, product_id, quantity
`

// CreateCartItemParams holds the arguments for CreateCartItem.
type CreateCartItemParams struct {
	CustomerID int64
	ProductID  int64
	Quantity   int32
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CreateCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, createCartItem, arg.CustomerID, arg.ProductID, arg.Quantity)
	var c CartItem
	err := row.Scan(&c.ID, &c.CustomerID, &c.ProductID, &c.Quantity)
	return c, err
}

const getCartItem = `
SELECT id, customer_id, product_id, quantity
FROM cart_item
WHERE id = $1
`

func (q *Queries) GetCartItem(ctx context.Context, id int64) (CartItem, error) {
	row := q.db.QueryRow(ctx, getCartItem, id)
	var c CartItem
	err := row.Scan(&c.ID, &c.CustomerID, &c.ProductID, &c.Quantity)
	return c, err
}

const listCartItems = `
SELECT ci.id, ci.customer_id, ci.product_id, ci.quantity,
       p.name, p.price_cents, p.stock, p.image_url
FROM cart_item ci
JOIN product p ON p.id = ci.product_id
WHERE ci.customer_id = $1
ORDER BY ci.id
`

// ListCartItemsRow joins a cart item with the live product facts it points at.
type ListCartItemsRow struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int32
	Name       string
	PriceCents int64
	Stock      int32
	ImageURL   string
}

func (q *Queries) ListCartItems(ctx context.Context, customerID int64) ([]ListCartItemsRow, error) {
	rows, err := q.db.Query(ctx, listCartItems, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListCartItemsRow
	for rows.Next() {
		var r ListCartItemsRow
		if err := rows.Scan(&r.ID, &r.CustomerID, &r.ProductID, &r.Quantity,
			&r.Name, &r.PriceCents, &r.Stock, &r.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const updateCartItemQuantity = `
UPDATE cart_item
SET quantity = $2
WHERE id = $1
`

// UpdateCartItemQuantityParams holds the arguments for UpdateCartItemQuantity.
type UpdateCartItemQuantityParams struct {
	ID       int64
	Quantity int32
}

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) error {
	_, err := q.db.Exec(ctx, updateCartItemQuantity, arg.ID, arg.Quantity)
	return err
}

const deleteCartItem = `
DELETE FROM cart_item
WHERE id = $1
`

func (q *Queries) DeleteCartItem(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCartItem, id)
	return err
}
