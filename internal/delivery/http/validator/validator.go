// Package validator wires go-playground/validator as echo's request validator.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator adapts validator.Validate to echo's Validator interface.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct validation on a bound request.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
