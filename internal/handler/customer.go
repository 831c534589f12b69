package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/middleware"
	"github.com/jmorrow/cartwheel/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type customerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

func (h *CustomerHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.Signup", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customers.Register(c.Request().Context(), req.Username, domain.PlainPassword(req.Password))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customerResponse{ID: customer.ID, Username: customer.Username})
}

func (h *CustomerHandler) Me(c echo.Context) error {
	customer := middleware.CustomerFromContext(c)
	return c.JSON(http.StatusOK, customerResponse{ID: customer.ID, Username: customer.Username})
}

func (h *CustomerHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.ChangePassword", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	err := h.customers.UpdatePassword(c.Request().Context(), customer,
		domain.PlainPassword(req.CurrentPassword), domain.PlainPassword(req.NewPassword))
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	customer := middleware.CustomerFromContext(c)
	if err := h.customers.Delete(c.Request().Context(), customer.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
