package domain

// ErrInvalidQuantity is returned when a quantity below 1 is requested.
var ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be at least 1"}

// Quantity is the number of units of a product a customer intends to buy.
// It is always at least 1. A Quantity never changes in place; holders that
// need a different amount construct a new one.
type Quantity struct {
	value int32
}

// NewQuantity validates value and wraps it in a Quantity.
func NewQuantity(value int32) (Quantity, error) {
	if value < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

// Value returns the wrapped amount.
func (q Quantity) Value() int32 {
	return q.value
}
