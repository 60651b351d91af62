package security

import "go.uber.org/zap/zapcore"

// Severity is derived from EventType, never from request input
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// EventSeverityMap is the fixed severity for each event type
var EventSeverityMap = map[EventType]Severity{
	// INFO - caller mistakes
	EventValidationFailed: SeverityINFO,
	EventMethodNotAllowed: SeverityINFO,

	// WARN - bot traffic
	EventHoneypotTriggered: SeverityWARN,

	// HIGH - a browser on a site we do not serve
	EventOriginRejected: SeverityHIGH,
}

// GetSeverity returns the severity for an event type, MEDIUM if unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

func (s Severity) zapLevel() zapcore.Level {
	if s == SeverityINFO {
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}
