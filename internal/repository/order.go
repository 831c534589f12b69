package repository

import "context"

const createOrder = `
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING id, customer_id, created_at
`

func (q *Queries) CreateOrder(ctx context.Context, customerID int64) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder, customerID)
	var o Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.CreatedAt)
	return o, err
}

const createOrderLine = `
INSERT INTO order_line (order_id, product_id, quantity, price_cents, name, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, product_id, quantity, price_cents, name, image_url
`

// CreateOrderLineParams holds the arguments for CreateOrderLine.
type CreateOrderLineParams struct {
	OrderID    int64
	ProductID  int64
	Quantity   int32
	PriceCents int64
	Name       string
	ImageURL   string
}

func (q *Queries) CreateOrderLine(ctx context.Context, arg CreateOrderLineParams) (OrderLine, error) {
	row := q.db.QueryRow(ctx, createOrderLine,
		arg.OrderID, arg.ProductID, arg.Quantity, arg.PriceCents, arg.Name, arg.ImageURL)
	var l OrderLine
	err := row.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.PriceCents, &l.Name, &l.ImageURL)
	return l, err
}

const getOrder = `
SELECT id, customer_id, created_at
FROM orders
WHERE id = $1 AND customer_id = $2
`

// GetOrderParams holds the arguments for GetOrder. CustomerID is part of the
// lookup, not an afterthought: an order owned by someone else scans the same
// as one that does not exist.
type GetOrderParams struct {
	ID         int64
	CustomerID int64
}

func (q *Queries) GetOrder(ctx context.Context, arg GetOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, arg.ID, arg.CustomerID)
	var o Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.CreatedAt)
	return o, err
}

const listOrders = `
SELECT id, customer_id, created_at
FROM orders
WHERE customer_id = $1
ORDER BY id
`

func (q *Queries) ListOrders(ctx context.Context, customerID int64) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const listOrderLines = `
SELECT id, order_id, product_id, quantity, price_cents, name, image_url
FROM order_line
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderLines(ctx context.Context, orderID int64) ([]OrderLine, error) {
	rows, err := q.db.Query(ctx, listOrderLines, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []OrderLine
	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.PriceCents, &l.Name, &l.ImageURL); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
