package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
)

// errorResponse is the uniform error body. Only the safe user-facing message
// leaves the process; operation names and wrapped causes stay in the logs.
type errorResponse struct {
	Message string `json:"message"`
}

// statusFromCode maps domain error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler builds the echo error handler translating domain errors
// into JSON responses. Internal errors are logged with their operation and
// cause but reported generically.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		code := domain.ErrorCode(err)
		status := statusFromCode(code)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("op", domain.ErrorOp(err)),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}

		_ = c.JSON(status, errorResponse{Message: domain.ErrorMessage(err)})
	}
}
