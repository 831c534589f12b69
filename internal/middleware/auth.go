package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/service"
)

// customerContextKey is the echo context key for the authenticated customer.
const customerContextKey = "customer"

// RequireAuth resolves the bearer token into a customer and stores it on the
// request context. Requests without a valid token are rejected; handlers
// behind this middleware can rely on CustomerFromContext returning non-nil.
func RequireAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return domain.ErrInvalidToken
			}

			customer, err := authService.ResolvePrincipal(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(customerContextKey, customer)
			return next(c)
		}
	}
}

// CustomerFromContext retrieves the authenticated customer from the request
// context. Returns nil if the request did not pass RequireAuth.
func CustomerFromContext(c echo.Context) *domain.Customer {
	customer, ok := c.Get(customerContextKey).(*domain.Customer)
	if !ok {
		return nil
	}
	return customer
}
