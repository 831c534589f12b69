package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/service"
)

type mockAuthService struct {
	LoginFunc            func(ctx context.Context, username string, password domain.PlainPassword) (string, error)
	ResolvePrincipalFunc func(ctx context.Context, token string) (*domain.Customer, error)
}

func (m *mockAuthService) Login(ctx context.Context, username string, password domain.PlainPassword) (string, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockAuthService) ResolvePrincipal(ctx context.Context, token string) (*domain.Customer, error) {
	return m.ResolvePrincipalFunc(ctx, token)
}

type mockCartService struct {
	AddItemFunc            func(ctx context.Context, customerID, productID int64, quantity int32) (*domain.CartItem, error)
	UpdateItemQuantityFunc func(ctx context.Context, customerID, itemID int64, quantity int32) (*domain.CartItem, error)
	RemoveItemFunc         func(ctx context.Context, customerID, itemID int64) error
	ListItemsFunc          func(ctx context.Context, customerID int64) ([]domain.CartItem, error)
}

func (m *mockCartService) AddItem(ctx context.Context, customerID, productID int64, quantity int32) (*domain.CartItem, error) {
	return m.AddItemFunc(ctx, customerID, productID, quantity)
}

func (m *mockCartService) UpdateItemQuantity(ctx context.Context, customerID, itemID int64, quantity int32) (*domain.CartItem, error) {
	return m.UpdateItemQuantityFunc(ctx, customerID, itemID, quantity)
}

func (m *mockCartService) RemoveItem(ctx context.Context, customerID, itemID int64) error {
	return m.RemoveItemFunc(ctx, customerID, itemID)
}

func (m *mockCartService) ListItems(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	return m.ListItemsFunc(ctx, customerID)
}

type mockOrderService struct {
	PlaceOrderFunc func(ctx context.Context, customerID int64, cartItemIDs []int64) (int64, error)
	GetOrderFunc   func(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
	ListOrdersFunc func(ctx context.Context, customerID int64) ([]domain.Order, error)
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, customerID int64, cartItemIDs []int64) (int64, error) {
	return m.PlaceOrderFunc(ctx, customerID, cartItemIDs)
}

func (m *mockOrderService) GetOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	return m.GetOrderFunc(ctx, customerID, orderID)
}

func (m *mockOrderService) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return m.ListOrdersFunc(ctx, customerID)
}

type mockCustomerService struct {
	RegisterFunc func(ctx context.Context, username string, password domain.PlainPassword) (*domain.Customer, error)
}

func (m *mockCustomerService) Register(ctx context.Context, username string, password domain.PlainPassword) (*domain.Customer, error) {
	return m.RegisterFunc(ctx, username, password)
}

func (m *mockCustomerService) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	panic("not implemented")
}

func (m *mockCustomerService) UpdatePassword(ctx context.Context, customer *domain.Customer, current, next domain.PlainPassword) error {
	panic("not implemented")
}

func (m *mockCustomerService) Delete(ctx context.Context, customerID int64) error {
	panic("not implemented")
}

type mockProductService struct {
	ListFunc func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockProductService) Create(ctx context.Context, params service.CreateProductParams) (*domain.Product, error) {
	panic("not implemented")
}

func (m *mockProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	panic("not implemented")
}

func (m *mockProductService) List(ctx context.Context) ([]domain.Product, error) {
	return m.ListFunc(ctx)
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	panic("not implemented")
}

var testCustomer = &domain.Customer{ID: 7, Username: "kira", Password: "ignored"}

// resolveTestCustomer accepts exactly the token "good-token".
func resolveTestCustomer(_ context.Context, token string) (*domain.Customer, error) {
	if token != "good-token" {
		return nil, domain.ErrInvalidToken
	}
	return testCustomer, nil
}

func newTestServer(t *testing.T, svcs Services) *echo.Echo {
	t.Helper()
	if svcs.Auth == nil {
		svcs.Auth = &mockAuthService{ResolvePrincipalFunc: resolveTestCustomer}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(logger, prometheus.NewRegistry(), svcs)
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	auth := &mockAuthService{
		LoginFunc: func(_ context.Context, username string, password domain.PlainPassword) (string, error) {
			if username == "kira" && password == "hunter2-hunter2" {
				return "issued-token", nil
			}
			return "", domain.ErrInvalidCredentials
		},
		ResolvePrincipalFunc: resolveTestCustomer,
	}
	e := newTestServer(t, Services{Auth: auth})

	t.Run("valid credentials", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/login", "", `{"username":"kira","password":"hunter2-hunter2"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"issued-token"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/login", "", `{"username":"kira","password":"nope-nope-no"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/login", "", `{"username":"kira"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSignup(t *testing.T) {
	customers := &mockCustomerService{
		RegisterFunc: func(_ context.Context, username string, _ domain.PlainPassword) (*domain.Customer, error) {
			if username == "taken" {
				return nil, domain.ErrUsernameTaken
			}
			return &domain.Customer{ID: 1, Username: username}, nil
		},
	}
	e := newTestServer(t, Services{Customers: customers})

	t.Run("created", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/customers", "", `{"username":"kira","password":"hunter2-hunter2"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"kira"}`, rec.Body.String())
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/customers", "", `{"username":"taken","password":"hunter2-hunter2"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	e := newTestServer(t, Services{})

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/cart", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/orders", "garbage", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	product := domain.Product{ID: 3, Name: "chai", PriceCents: 1250, Stock: 10, ImageURL: "https://img.example/chai.png"}

	cart := &mockCartService{
		AddItemFunc: func(_ context.Context, customerID, productID int64, quantity int32) (*domain.CartItem, error) {
			require.Equal(t, testCustomer.ID, customerID)
			if quantity > product.Stock {
				return nil, domain.ErrStockExceeded
			}
			return domain.NewCartItem(customerID, product, quantity)
		},
		UpdateItemQuantityFunc: func(_ context.Context, customerID, itemID int64, quantity int32) (*domain.CartItem, error) {
			if itemID != 1 {
				return nil, domain.ErrCartItemNotFound
			}
			return domain.NewCartItem(customerID, product, quantity)
		},
		ListItemsFunc: func(_ context.Context, customerID int64) ([]domain.CartItem, error) {
			return nil, nil
		},
	}
	e := newTestServer(t, Services{Cart: cart})

	t.Run("add item", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/cart", "good-token", `{"productId":3,"quantity":2}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"productId":3`)
		assert.Contains(t, rec.Body.String(), `"quantity":2`)
	})

	t.Run("add beyond stock", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/cart", "good-token", `{"productId":3,"quantity":11}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("zero quantity rejected before the service", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/cart", "good-token", `{"productId":3,"quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update missing item", func(t *testing.T) {
		rec := doRequest(e, http.MethodPatch, "/api/cart/99", "good-token", `{"quantity":2}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doRequest(e, http.MethodPatch, "/api/cart/abc", "good-token", `{"quantity":2}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty cart lists as empty array", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/cart", "good-token", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestOrderEndpoints(t *testing.T) {
	orders := &mockOrderService{
		PlaceOrderFunc: func(_ context.Context, customerID int64, cartItemIDs []int64) (int64, error) {
			require.Equal(t, testCustomer.ID, customerID)
			for _, id := range cartItemIDs {
				if id == 66 {
					return 0, domain.ErrOrderForbidden
				}
			}
			return 42, nil
		},
		GetOrderFunc: func(_ context.Context, customerID, orderID int64) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	e := newTestServer(t, Services{Orders: orders})

	t.Run("placed", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/orders", "good-token", `{"cartItemIds":[1,2]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/orders/42", rec.Header().Get(echo.HeaderLocation))
		assert.JSONEq(t, `{"id":42}`, rec.Body.String())
	})

	t.Run("foreign cart item", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/orders", "good-token", `{"cartItemIds":[1,66]}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("empty id list", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/orders", "good-token", `{"cartItemIds":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/orders/5", "good-token", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListProducts(t *testing.T) {
	products := &mockProductService{
		ListFunc: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 3, Name: "chai", PriceCents: 1250, Stock: 10, ImageURL: "https://img.example/chai.png"}}, nil
		},
	}
	e := newTestServer(t, Services{Products: products})

	rec := doRequest(e, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":3,"name":"chai","priceCents":1250,"stock":10,"imageUrl":"https://img.example/chai.png"}]`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, Services{})
	rec := doRequest(e, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
