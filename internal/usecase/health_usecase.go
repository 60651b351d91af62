package usecase

import (
	"context"

	"go-contact-relay/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender domain.EmailSender
}

func NewHealthUsecase(sender domain.EmailSender) HealthUsecase {
	return &healthUsecase{sender: sender}
}

// Check never calls the provider; it only reports whether sending is possible
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	provider := "configured"
	if !u.sender.IsConfigured() {
		provider = "not_configured"
	}
	return map[string]string{
		"status":         "ok",
		"email_provider": provider,
	}
}
