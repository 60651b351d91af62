package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-contact-relay/internal/domain"
	"go-contact-relay/internal/usecase"
	"go-contact-relay/pkg/email"
	"go-contact-relay/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg domain.OutboundEmail) (*domain.Delivery, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockEmailSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

var addresses = email.Addresses{
	From:          "onboarding@resend.dev",
	To:            "inbox@example.com",
	SubjectPrefix: "CES Contact: ",
	Heading:       "New CES Contact Form Message",
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{Name: "Ana", Email: "ana@x.com", Subject: "Hi", Message: "Line1\nLine2"}
}

func newUsecase(sender *MockEmailSender) domain.ContactUsecase {
	return usecase.NewContactUsecase(sender, validation.New(), addresses)
}

func TestContactSubmitSuccess(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Send", mock.Anything, mock.AnythingOfType("domain.OutboundEmail")).
		Return(&domain.Delivery{ID: "abc123"}, nil).
		Run(func(args mock.Arguments) {
			msg := args.Get(1).(domain.OutboundEmail)
			assert.Equal(t, "inbox@example.com", msg.To)
			assert.Equal(t, "ana@x.com", msg.ReplyTo)
			assert.Equal(t, "CES Contact: Hi", msg.Subject)
			assert.Contains(t, msg.HTML, "Line1<br/>Line2")
		})

	res, err := newUsecase(sender).Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.ID)
	assert.False(t, res.Honeypot)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestContactSubmitHoneypot(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)

	sub := validSubmission()
	sub.Company = "  Acme Bots  "

	res, err := newUsecase(sender).Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.True(t, res.Honeypot)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

	t.Run("Should skip validation for bots", func(t *testing.T) {
		res, err := newUsecase(sender).Submit(context.Background(), &domain.ContactSubmission{Company: "x"})
		require.NoError(t, err)
		assert.True(t, res.Honeypot)
	})

	t.Run("Should ignore whitespace-only honeypot", func(t *testing.T) {
		sub := &domain.ContactSubmission{Company: "   "}
		_, err := newUsecase(sender).Submit(context.Background(), sub)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})
}

func TestContactSubmitValidation(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	uc := newUsecase(sender)

	t.Run("Should fail when a field is whitespace only", func(t *testing.T) {
		sub := validSubmission()
		sub.Subject = " \t "
		_, err := uc.Submit(context.Background(), sub)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("Should fail when email lacks @", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = "ana.x.com"
		_, err := uc.Submit(context.Background(), sub)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactSubmitNotConfigured(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(false)

	_, err := newUsecase(sender).Submit(context.Background(), validSubmission())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactSubmitSanitizesHTML(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)

	var sent domain.OutboundEmail
	sender.On("Send", mock.Anything, mock.Anything).
		Return(&domain.Delivery{ID: "id"}, nil).
		Run(func(args mock.Arguments) { sent = args.Get(1).(domain.OutboundEmail) })

	sub := validSubmission()
	sub.Name = "<script>alert(1)</script>"

	_, err := newUsecase(sender).Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Contains(t, sent.HTML, "&lt;script&gt;")
	assert.NotContains(t, sent.HTML, "<script>")
}

func TestContactSubmitProviderError(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	provErr := &domain.ProviderError{
		StatusCode: 422,
		Message:    "Invalid from address",
		Details:    map[string]any{"message": "Invalid from address"},
	}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil, provErr)

	_, err := newUsecase(sender).Submit(context.Background(), validSubmission())

	var got *domain.ProviderError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 422, got.StatusCode)
}
