package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmorrow/cartwheel/internal/middleware"
	"github.com/jmorrow/cartwheel/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth      service.AuthService
	Customers service.CustomerService
	Products  service.ProductService
	Cart      service.CartService
	Orders    service.OrderService
}

// NewServer assembles the echo instance with all routes and middleware.
// Collectors are registered with reg, so tests can hand in a fresh registry.
func NewServer(logger *slog.Logger, reg *prometheus.Registry, svcs Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.NewMetrics(reg, "cartwheel").Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	authHandler := NewAuthHandler(svcs.Auth)
	customerHandler := NewCustomerHandler(svcs.Customers)
	productHandler := NewProductHandler(svcs.Products)
	cartHandler := NewCartHandler(svcs.Cart)
	orderHandler := NewOrderHandler(svcs.Orders)

	api := e.Group("/api")

	api.POST("/customers", customerHandler.Signup)
	api.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/products", productHandler.Create)
	api.DELETE("/products/:id", productHandler.Delete)

	authed := api.Group("", middleware.RequireAuth(svcs.Auth))

	authed.GET("/customers/me", customerHandler.Me)
	authed.PATCH("/customers/me/password", customerHandler.ChangePassword)
	authed.DELETE("/customers/me", customerHandler.Delete)

	authed.GET("/cart", cartHandler.List)
	authed.POST("/cart", cartHandler.Add)
	authed.PATCH("/cart/:id", cartHandler.UpdateQuantity)
	authed.DELETE("/cart/:id", cartHandler.Remove)

	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)

	return e
}
