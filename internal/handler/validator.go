package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface. Validation failures come back as EINVALID so the error
// handler renders them as 400s.
type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return &domain.Error{
			Code:    domain.EINVALID,
			Message: "Invalid request body.",
			Op:      "handler.Validate",
			Err:     err,
		}
	}
	return nil
}
