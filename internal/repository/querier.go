package repository

import "context"

// Querier is the query surface the service layer depends on. Services take
// this interface so tests can substitute in-memory fakes.
type Querier interface {
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	GetCustomerByUsername(ctx context.Context, username string) (Customer, error)
	UpdateCustomerPassword(ctx context.Context, arg UpdateCustomerPasswordParams) error
	DeleteCustomer(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCartItem(ctx context.Context, arg CreateCartItemParams) (CartItem, error)
	GetCartItem(ctx context.Context, id int64) (CartItem, error)
	ListCartItems(ctx context.Context, customerID int64) ([]ListCartItemsRow, error)
	UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) error
	DeleteCartItem(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, customerID int64) (Order, error)
	CreateOrderLine(ctx context.Context, arg CreateOrderLineParams) (OrderLine, error)
	GetOrder(ctx context.Context, arg GetOrderParams) (Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]Order, error)
	ListOrderLines(ctx context.Context, orderID int64) ([]OrderLine, error)
}

var _ Querier = (*Queries)(nil)
