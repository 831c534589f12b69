package repository

import "time"

// Customer is a row of the customer table.
type Customer struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Product is a row of the product table.
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
	Stock      int32
	ImageURL   string
	CreatedAt  time.Time
}

// CartItem is a row of the cart_item table.
type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int32
}

// Order is a row of the orders table.
type Order struct {
	ID         int64
	CustomerID int64
	CreatedAt  time.Time
}

// OrderLine is a row of the order_line table. The denormalized product
// columns are the mechanism by which historical pricing survives product
// changes and deletion.
type OrderLine struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int32
	PriceCents int64
	Name       string
	ImageURL   string
}
