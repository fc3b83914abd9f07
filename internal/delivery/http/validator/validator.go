// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "wattpay/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator ready to be assigned to echo's Validator field.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound request payload. Violations
// surface as a domain validation error so the error handler renders the
// standard envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
