package domain

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}

// Product is the live catalog record referenced by cart items. The cart and
// order flows read it for stock checks and checkout snapshots; stock itself
// is owned by the catalog and is never decremented here.
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
	Stock      int32
	ImageURL   string
}

// StockAvailable reports whether the product can cover the requested quantity.
func (p Product) StockAvailable(quantity int32) bool {
	return quantity <= p.Stock
}
