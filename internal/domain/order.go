package domain

import "time"

// Order domain errors.
var (
	ErrOrderNotFound  = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrOrderEmpty     = &Error{Code: EINVALID, Message: "Order must contain at least one cart item"}
	ErrOrderForbidden = &Error{Code: EFORBIDDEN, Message: "Cannot order another customer's cart items"}
)

// OrderLine is a frozen copy of one product's facts at checkout time.
// ProductID is kept for traceability only; price, name and image are captured
// once and never re-read, so later product changes or deletion do not reach
// existing orders.
type OrderLine struct {
	ID         int64
	ProductID  int64
	Quantity   int32
	PriceCents int64
	Name       string
	ImageURL   string
}

// NewOrderLine captures the cart item's product facts into an immutable line.
func NewOrderLine(item *CartItem) OrderLine {
	return OrderLine{
		ProductID:  item.Product.ID,
		Quantity:   item.Quantity.Value(),
		PriceCents: item.Product.PriceCents,
		Name:       item.Product.Name,
		ImageURL:   item.Product.ImageURL,
	}
}

// Order is the immutable record of a completed checkout. It is constructed
// exactly once from a set of cart items; no operation adds, removes or
// updates lines afterwards.
type Order struct {
	ID         int64
	CustomerID int64
	Lines      []OrderLine
	CreatedAt  time.Time
}

// NewOrder snapshots the given cart items into an order.
func NewOrder(customerID int64, items []*CartItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderEmpty
	}

	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, NewOrderLine(item))
	}

	return &Order{
		CustomerID: customerID,
		Lines:      lines,
	}, nil
}
