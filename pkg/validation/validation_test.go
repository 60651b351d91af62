package validation_test

import (
	"errors"
	"testing"

	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestContactFailure(t *testing.T) {
	v := validation.New()

	valid := domain.ContactSubmission{Name: "Ana", Email: "ana@x.com", Subject: "Hi", Message: "Hello"}

	tests := []struct {
		name   string
		mutate func(s *domain.ContactSubmission)
		want   error
	}{
		{"valid submission", func(s *domain.ContactSubmission) {}, nil},
		{"blank name", func(s *domain.ContactSubmission) { s.Name = "   " }, domain.ErrMissingFields},
		{"empty message", func(s *domain.ContactSubmission) { s.Message = "" }, domain.ErrMissingFields},
		{"whitespace email", func(s *domain.ContactSubmission) { s.Email = "\t\n" }, domain.ErrMissingFields},
		{"email without at", func(s *domain.ContactSubmission) { s.Email = "ana.x.com" }, domain.ErrInvalidEmail},
		{"missing field beats bad email", func(s *domain.ContactSubmission) {
			s.Email = "ana.x.com"
			s.Subject = ""
		}, domain.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)
			got := validation.ContactFailure(v.Struct(sub))
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestContactFailurePassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, validation.ContactFailure(other))
}
