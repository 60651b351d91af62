package domain

import (
	"context"
	"errors"
	"fmt"
)

// ContactSubmission represents a contact form submission.
// Company is a honeypot: humans never see it, so any value means a bot.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"not_blank"`
	Email   string `json:"email" form:"email" validate:"not_blank,contains=@"`
	Subject string `json:"subject" form:"subject" validate:"not_blank"`
	Message string `json:"message" form:"message" validate:"not_blank"`
	Company string `json:"company,omitempty" form:"company"`
}

// OutboundEmail is the provider payload derived from a single submission.
type OutboundEmail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Delivery is what the provider returns for an accepted message.
type Delivery struct {
	ID string
}

// SubmitResult describes a handled submission. Honeypot submissions report
// success without a delivery.
type SubmitResult struct {
	Honeypot bool
	ID       string
}

var (
	ErrNotConfigured = errors.New("email provider is not configured")
	ErrMissingFields = errors.New("please fill out name, email, subject, and message")
	ErrInvalidEmail  = errors.New("please enter a valid email address")
)

// ProviderError is a non-2xx answer from the email provider. Details holds the
// decoded provider body, or an empty map when it was not JSON.
type ProviderError struct {
	StatusCode int
	Message    string
	Details    map[string]any
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider rejected request (status %d): %s", e.StatusCode, e.Message)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates, sanitizes and relays a submission to the provider
	Submit(ctx context.Context, sub *ContactSubmission) (*SubmitResult, error)
}

// EmailSender delivers one outbound email. Implementations make a single
// attempt and never retry.
type EmailSender interface {
	Send(ctx context.Context, email OutboundEmail) (*Delivery, error)
	IsConfigured() bool
}
