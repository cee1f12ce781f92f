// Package validator wires go-playground/validator into echo's request validation.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Video durations are fixed-width hh:mm:ss strings.
var durationPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server, with the custom
// hhmmss tag registered for video durations.
func New() echo.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag name.
	_ = validate.RegisterValidation("hhmmss", func(fl validator.FieldLevel) bool {
		return durationPattern.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
