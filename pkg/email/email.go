package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-contact-relay/config"
	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/telemetry"

	"github.com/resend/resend-go/v2"
)

// maxProviderBody caps how much of a provider response is kept for diagnostics
const maxProviderBody = 1 << 20

const fallbackProviderMessage = "Resend rejected the request"

// ResendSender delivers emails through the Resend HTTP API
type ResendSender struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewResendSender creates a sender from the Resend settings in cfg
func NewResendSender(cfg *config.Config) *ResendSender {
	return &ResendSender{
		endpoint: cfg.ResendURL,
		apiKey:   cfg.ResendAPIKey,
		client: &http.Client{
			Timeout:   cfg.ResendTimeout,
			Transport: telemetry.Transport(nil),
		},
	}
}

// IsConfigured checks if an API key is available
func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}

// Send makes exactly one POST to the provider. Non-2xx answers come back as
// *domain.ProviderError; network failures as wrapped errors.
func (s *ResendSender) Send(ctx context.Context, msg domain.OutboundEmail) (*domain.Delivery, error) {
	if !s.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	payload, err := json.Marshal(&resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		telemetry.ObserveProvider("error", time.Since(start))
		return nil, fmt.Errorf("failed to reach email provider: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	details := decodeDetails(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		telemetry.ObserveProvider("rejected", time.Since(start))
		return nil, &domain.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(details),
			Details:    details,
		}
	}
	telemetry.ObserveProvider("ok", time.Since(start))

	var sent resend.SendEmailResponse
	_ = json.Unmarshal(raw, &sent)
	return &domain.Delivery{ID: sent.Id}, nil
}

// decodeDetails tolerates non-JSON bodies by returning an empty object
func decodeDetails(raw []byte) map[string]any {
	var details map[string]any
	if err := json.Unmarshal(raw, &details); err != nil || details == nil {
		return map[string]any{}
	}
	return details
}

// providerMessage prefers "message", then "error", then a generic fallback
func providerMessage(details map[string]any) string {
	for _, key := range []string{"message", "error"} {
		if s, ok := details[key].(string); ok && s != "" {
			return s
		}
	}
	return fallbackProviderMessage
}
