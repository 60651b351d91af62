package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-contact-relay/internal/delivery/http/middleware"
	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgMissingFields = "Please fill out name, email, subject, and message."
	msgInvalidEmail  = "Please enter a valid email address."
	msgNotConfigured = "Missing RESEND_API_KEY. Add it to the deployment's environment variables (Production)."
)

// ContactRoute describes where and how the contact endpoint is mounted
type ContactRoute struct {
	Path         string
	CORS         middleware.CORSPolicy
	MaxBodyBytes int64
}

type ContactHandler struct {
	contactUC    domain.ContactUsecase
	secLog       *security.SecurityLogger
	maxBodyBytes int64
}

// NewContactHandler registers the contact route (public, no auth required).
// Every method is routed here so CORS headers are present even on 405s.
func NewContactHandler(r gin.IRoutes, route ContactRoute, contactUC domain.ContactUsecase, secLog *security.SecurityLogger) {
	handler := &ContactHandler{
		contactUC:    contactUC,
		secLog:       secLog,
		maxBodyBytes: route.MaxBodyBytes,
	}

	r.Any(route.Path, middleware.CORSMiddleware(route.CORS, secLog), handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission and relays it to the email provider. Public endpoint.
// @Tags         contact
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Result
// @Failure      400      {object}  response.ErrorBody
// @Failure      403      {object}  response.ErrorBody
// @Failure      405      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.secLog.LogMethodNotAllowed(c.Request.Context(), c.Request.Method, middleware.RequestInfo(c))
		c.Header("Allow", "POST, OPTIONS")
		_ = c.Error(apperror.MethodNotAllowed())
		return
	}

	sub := h.decodeSubmission(c)

	res, err := h.contactUC.Submit(c.Request.Context(), sub)
	if err != nil {
		h.handleSubmitError(c, err)
		return
	}

	if res.Honeypot {
		h.secLog.LogHoneypotTriggered(c.Request.Context(), sub.Email, middleware.RequestInfo(c))
		telemetry.RecordSubmission(telemetry.OutcomeHoneypot)
		response.Success(c, http.StatusOK, "")
		return
	}

	telemetry.RecordSubmission(telemetry.OutcomeSent)
	response.Success(c, http.StatusOK, res.ID)
}

func (h *ContactHandler) handleSubmitError(c *gin.Context, err error) {
	var provErr *domain.ProviderError

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		telemetry.RecordSubmission(telemetry.OutcomeNotConfigured)
		_ = c.Error(apperror.New(http.StatusInternalServerError, msgNotConfigured, err))

	case errors.Is(err, domain.ErrMissingFields):
		telemetry.RecordSubmission(telemetry.OutcomeInvalid)
		h.secLog.LogValidationFailed(c.Request.Context(), "missing_fields", middleware.RequestInfo(c))
		_ = c.Error(apperror.BadRequest(msgMissingFields))

	case errors.Is(err, domain.ErrInvalidEmail):
		telemetry.RecordSubmission(telemetry.OutcomeInvalid)
		h.secLog.LogValidationFailed(c.Request.Context(), "invalid_email", middleware.RequestInfo(c))
		_ = c.Error(apperror.BadRequest(msgInvalidEmail))

	case errors.As(err, &provErr):
		telemetry.RecordSubmission(telemetry.OutcomeProviderError)
		_ = c.Error(apperror.Upstream(provErr.StatusCode, provErr.Message, provErr.Details, err))

	default:
		telemetry.RecordSubmission(telemetry.OutcomeTransportError)
		_ = c.Error(apperror.Internal(err))
	}
}

// decodeSubmission never fails: anything unreadable becomes an empty record,
// which validation then rejects.
func (h *ContactHandler) decodeSubmission(c *gin.Context) *domain.ContactSubmission {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		sub := &domain.ContactSubmission{}
		var b binding.Binding = binding.FormPost
		if c.ContentType() == binding.MIMEMultipartPOSTForm {
			b = binding.FormMultipart
		}
		if err := c.ShouldBindWith(sub, b); err != nil {
			return &domain.ContactSubmission{}
		}
		return sub
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return &domain.ContactSubmission{}
	}
	return parseSubmission(raw)
}

// parseSubmission accepts a JSON object, or a JSON string whose content is a
// JSON object (bodies that were encoded twice by the client).
func parseSubmission(raw []byte) *domain.ContactSubmission {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &domain.ContactSubmission{}
	}
	if text, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return &domain.ContactSubmission{}
		}
	}

	record, _ := v.(map[string]any)
	return &domain.ContactSubmission{
		Name:    field(record, "name"),
		Email:   field(record, "email"),
		Subject: field(record, "subject"),
		Message: field(record, "message"),
		Company: field(record, "company"),
	}
}

// field coerces JSON values to text. A missing key is "", an explicit null is
// "null", so {"company":null} still counts as a filled honeypot.
func field(record map[string]any, key string) string {
	v, ok := record[key]
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
