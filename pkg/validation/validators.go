package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("not_blank", NotBlank)
}

// New returns a validator with the custom tags already registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// NotBlank fails on empty or whitespace-only strings
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
