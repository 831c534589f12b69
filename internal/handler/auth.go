package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges a username and password for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.Login", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, domain.PlainPassword(req.Password))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}
