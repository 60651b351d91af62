package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultResendURL     = "https://api.resend.com/emails"
	DefaultContactTo     = "ilt2109@columbia.edu"
	DefaultContactFrom   = "onboarding@resend.dev"
	DefaultSubjectPrefix = "CES Contact: "
	DefaultHeading       = "New CES Contact Form Message"
	DefaultContactPath   = "/api/contact"
)

type Config struct {
	Port        string
	Environment string
	ServiceName string
	// Resend
	ResendAPIKey  string
	ResendURL     string
	ResendTimeout time.Duration
	// Contact form
	ContactTo     string
	ContactFrom   string
	SubjectPrefix string
	Heading       string
	ContactPath   string
	MaxBodyBytes  int64
	// CORS
	AllowedOrigins []string
	DefaultOrigin  string
	AllowedHeaders string
	// Observability
	TracingExporter string // none, stdout, otlp
	OTLPEndpoint    string
	MetricsEnabled  bool
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; deployed functions get real env vars
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		ServiceName: getEnv("SERVICE_NAME", "contact-relay"),
		// Resend
		ResendAPIKey:  strings.TrimSpace(getEnv("RESEND_API_KEY", "")),
		ResendURL:     getEnvNonEmpty("RESEND_API_URL", DefaultResendURL),
		ResendTimeout: time.Duration(getEnvInt("RESEND_TIMEOUT_SECONDS", 10)) * time.Second,
		// Contact form (empty values fall back to the literal defaults)
		ContactTo:     getEnvNonEmpty("CONTACT_TO", DefaultContactTo),
		ContactFrom:   getEnvNonEmpty("CONTACT_FROM", DefaultContactFrom),
		SubjectPrefix: getEnv("CONTACT_SUBJECT_PREFIX", DefaultSubjectPrefix),
		Heading:       getEnvNonEmpty("CONTACT_HEADING", DefaultHeading),
		ContactPath:   getEnvNonEmpty("CONTACT_PATH", DefaultContactPath),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		// CORS
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"https://iz-tecum.github.io",
			"https://cueconsociety.vercel.app",
		}),
		AllowedHeaders: getEnvNonEmpty("CORS_ALLOWED_HEADERS", "Content-Type, Accept"),
		// Observability
		TracingExporter: strings.ToLower(getEnv("TRACING_EXPORTER", "none")),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}

	cfg.DefaultOrigin = getEnv("CORS_DEFAULT_ORIGIN", "")
	if cfg.DefaultOrigin == "" && len(cfg.AllowedOrigins) > 0 {
		cfg.DefaultOrigin = cfg.AllowedOrigins[0]
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact submissions will fail with 500.")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvNonEmpty treats a set-but-empty variable the same as an unset one
func getEnvNonEmpty(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blank entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
