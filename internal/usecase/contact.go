package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/email"
	"go-contact-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender    domain.EmailSender
	validate  *validator.Validate
	addresses email.Addresses
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.EmailSender, validate *validator.Validate, addresses email.Addresses) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		validate:  validate,
		addresses: addresses,
	}
}

// Submit checks configuration, filters bots, validates and relays one message.
// Returned errors are domain sentinels, *domain.ProviderError, or wrapped
// transport failures.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.SubmitResult, error) {
	if !uc.sender.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	// Bots get the same answer as a real success
	if strings.TrimSpace(sub.Company) != "" {
		return &domain.SubmitResult{Honeypot: true}, nil
	}

	if err := validation.ContactFailure(uc.validate.Struct(sub)); err != nil {
		return nil, err
	}

	msg := email.ComposeContactEmail(sub, uc.addresses)

	delivery, err := uc.sender.Send(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to send contact email: %w", err)
	}

	return &domain.SubmitResult{ID: delivery.ID}, nil
}
