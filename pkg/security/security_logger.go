package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventOriginRejected    EventType = "origin_rejected"
	EventHoneypotTriggered EventType = "honeypot_triggered"
	EventValidationFailed  EventType = "validation_failed"
	EventMethodNotAllowed  EventType = "method_not_allowed"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "origin", "ip"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// RequestInfo is the caller metadata attached to every event
type RequestInfo struct {
	IP        string
	UserAgent string
	RequestID string
}

// SecurityLogger provides structured logging for security events.
// A nil *SecurityLogger discards everything.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// InitSecurityLogger builds a production Zap logger writing JSON to stdout
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Serverless platforms collect stdout/stderr
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return NewSecurityLogger(logger, serviceName, environment)
}

// NewSecurityLogger wraps an existing Zap logger
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if sl == nil || sl.zapLogger == nil {
		return
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	severity := GetSeverity(event.Event)
	level := severity.zapLevel()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogOriginRejected logs a browser request from an origin outside the allow-list
func (sl *SecurityLogger) LogOriginRejected(ctx context.Context, origin string, req RequestInfo) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventOriginRejected,
		SubjectType:  "origin",
		SubjectValue: origin,
		IP:           req.IP,
		UserAgent:    req.UserAgent,
		RequestID:    req.RequestID,
	})
}

// LogHoneypotTriggered logs a submission that filled the decoy field
func (sl *SecurityLogger) LogHoneypotTriggered(ctx context.Context, email string, req RequestInfo) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventHoneypotTriggered,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           req.IP,
		UserAgent:    req.UserAgent,
		RequestID:    req.RequestID,
	})
}

// LogValidationFailed logs a rejected submission with the reason shown to the caller
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, reason string, req RequestInfo) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventValidationFailed,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		RequestID: req.RequestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// LogMethodNotAllowed logs a request using an unsupported HTTP method
func (sl *SecurityLogger) LogMethodNotAllowed(ctx context.Context, method string, req RequestInfo) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventMethodNotAllowed,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		RequestID: req.RequestID,
		Details:   map[string]interface{}{"method": method},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	if sl == nil || sl.zapLogger == nil {
		return nil
	}
	return sl.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex < 0 {
		return HashValue(email)
	}
	if atIndex <= 1 {
		return "***" + email[atIndex:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
