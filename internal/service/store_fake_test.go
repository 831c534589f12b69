package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jmorrow/cartwheel/internal/repository"
)

// fakeStore is an in-memory repository.Store for service tests. ExecTx just
// runs the callback against the same maps; the tests only exercise paths
// where rollback is unobservable.
type fakeStore struct {
	customers  map[int64]repository.Customer
	products   map[int64]repository.Product
	cartItems  map[int64]repository.CartItem
	orders     map[int64]repository.Order
	orderLines map[int64]repository.OrderLine
	nextID     int64
}

var _ repository.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:  make(map[int64]repository.Customer),
		products:   make(map[int64]repository.Product),
		cartItems:  make(map[int64]repository.CartItem),
		orders:     make(map[int64]repository.Order),
		orderLines: make(map[int64]repository.OrderLine),
	}
}

func (f *fakeStore) next() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	return fn(f)
}

// Customers

func (f *fakeStore) CreateCustomer(ctx context.Context, arg repository.CreateCustomerParams) (repository.Customer, error) {
	for _, existing := range f.customers {
		if existing.Username == arg.Username {
			return repository.Customer{}, &pgconn.PgError{Code: "23505", ConstraintName: "customer_username_key"}
		}
	}
	c := repository.Customer{ID: f.next(), Username: arg.Username, PasswordHash: arg.PasswordHash}
	f.customers[c.ID] = c
	return c, nil
}

func (f *fakeStore) GetCustomerByUsername(ctx context.Context, username string) (repository.Customer, error) {
	for _, c := range f.customers {
		if c.Username == username {
			return c, nil
		}
	}
	return repository.Customer{}, pgx.ErrNoRows
}

func (f *fakeStore) UpdateCustomerPassword(ctx context.Context, arg repository.UpdateCustomerPasswordParams) error {
	c, ok := f.customers[arg.ID]
	if !ok {
		return nil
	}
	c.PasswordHash = arg.PasswordHash
	f.customers[arg.ID] = c
	return nil
}

func (f *fakeStore) DeleteCustomer(ctx context.Context, id int64) error {
	delete(f.customers, id)
	return nil
}

// Products

func (f *fakeStore) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	p := repository.Product{ID: f.next(), Name: arg.Name, PriceCents: arg.PriceCents, Stock: arg.Stock, ImageURL: arg.ImageURL}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeStore) GetProduct(ctx context.Context, id int64) (repository.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return repository.Product{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) ListProducts(ctx context.Context) ([]repository.Product, error) {
	var products []repository.Product
	for _, p := range f.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

// Cart items

func (f *fakeStore) CreateCartItem(ctx context.Context, arg repository.CreateCartItemParams) (repository.CartItem, error) {
	c := repository.CartItem{ID: f.next(), CustomerID: arg.CustomerID, ProductID: arg.ProductID, Quantity: arg.Quantity}
	f.cartItems[c.ID] = c
	return c, nil
}

func (f *fakeStore) GetCartItem(ctx context.Context, id int64) (repository.CartItem, error) {
	c, ok := f.cartItems[id]
	if !ok {
		return repository.CartItem{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeStore) ListCartItems(ctx context.Context, customerID int64) ([]repository.ListCartItemsRow, error) {
	var rows []repository.ListCartItemsRow
	for _, c := range f.cartItems {
		if c.CustomerID != customerID {
			continue
		}
		p := f.products[c.ProductID]
		rows = append(rows, repository.ListCartItemsRow{
			ID:         c.ID,
			CustomerID: c.CustomerID,
			ProductID:  c.ProductID,
			Quantity:   c.Quantity,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Stock:      p.Stock,
			ImageURL:   p.ImageURL,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (f *fakeStore) UpdateCartItemQuantity(ctx context.Context, arg repository.UpdateCartItemQuantityParams) error {
	c, ok := f.cartItems[arg.ID]
	if !ok {
		return nil
	}
	c.Quantity = arg.Quantity
	f.cartItems[arg.ID] = c
	return nil
}

func (f *fakeStore) DeleteCartItem(ctx context.Context, id int64) error {
	delete(f.cartItems, id)
	return nil
}

// Orders

func (f *fakeStore) CreateOrder(ctx context.Context, customerID int64) (repository.Order, error) {
	o := repository.Order{ID: f.next(), CustomerID: customerID}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeStore) CreateOrderLine(ctx context.Context, arg repository.CreateOrderLineParams) (repository.OrderLine, error) {
	l := repository.OrderLine{
		ID:         f.next(),
		OrderID:    arg.OrderID,
		ProductID:  arg.ProductID,
		Quantity:   arg.Quantity,
		PriceCents: arg.PriceCents,
		Name:       arg.Name,
		ImageURL:   arg.ImageURL,
	}
	f.orderLines[l.ID] = l
	return l, nil
}

func (f *fakeStore) GetOrder(ctx context.Context, arg repository.GetOrderParams) (repository.Order, error) {
	o, ok := f.orders[arg.ID]
	if !ok || o.CustomerID != arg.CustomerID {
		return repository.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (f *fakeStore) ListOrders(ctx context.Context, customerID int64) ([]repository.Order, error) {
	var orders []repository.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (f *fakeStore) ListOrderLines(ctx context.Context, orderID int64) ([]repository.OrderLine, error) {
	var lines []repository.OrderLine
	for _, l := range f.orderLines {
		if l.OrderID == orderID {
			lines = append(lines, l)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}
