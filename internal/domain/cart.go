package domain

// Cart domain errors.
var (
	ErrCartItemNotFound  = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrCartItemForbidden = &Error{Code: EFORBIDDEN, Message: "Cart item belongs to another customer"}
	ErrStockExceeded     = &Error{Code: ECONFLICT, Message: "Requested quantity exceeds available stock"}
)

// CartItem is a customer's pending intent to buy a quantity of a product.
// The quantity is validated against the product's stock when the item is
// created and again on every change.
type CartItem struct {
	// ID is zero until the item has been persisted.
	ID         int64
	CustomerID int64
	Product    Product
	Quantity   Quantity
}

// NewCartItem builds a cart item after checking the requested quantity
// against the product's current stock.
func NewCartItem(customerID int64, product Product, quantity int32) (*CartItem, error) {
	q, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	if !product.StockAvailable(q.Value()) {
		return nil, ErrStockExceeded
	}
	return &CartItem{
		CustomerID: customerID,
		Product:    product,
		Quantity:   q,
	}, nil
}

// RestoreCartItem rehydrates a persisted cart item without re-running the
// stock check. Stored rows were validated when written; stock may have shrunk
// since, and whether that matters is up to the operation loading the item.
func RestoreCartItem(id, customerID int64, product Product, quantity int32) (*CartItem, error) {
	q, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &CartItem{
		ID:         id,
		CustomerID: customerID,
		Product:    product,
		Quantity:   q,
	}, nil
}

// ChangeQuantity replaces the item's quantity after validating it against the
// product as currently loaded. Callers pass a fresh read of the product so a
// stock decrease since the item was added is taken into account.
func (c *CartItem) ChangeQuantity(current Product, quantity int32) error {
	q, err := NewQuantity(quantity)
	if err != nil {
		return err
	}
	if !current.StockAvailable(q.Value()) {
		return ErrStockExceeded
	}
	c.Product = current
	c.Quantity = q
	return nil
}
