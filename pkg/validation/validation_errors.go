package validation

import (
	"errors"

	"go-contact-relay/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ContactFailure maps validator errors for a ContactSubmission to the single
// error the caller sees. Missing fields win over a malformed email.
func ContactFailure(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	invalidEmail := false
	for _, e := range validationErrors {
		switch e.Tag() {
		case "not_blank", "required":
			return domain.ErrMissingFields
		case "contains":
			invalidEmail = true
		}
	}
	if invalidEmail {
		return domain.ErrInvalidEmail
	}
	return domain.ErrMissingFields
}
