package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"RESEND_API_KEY", "RESEND_API_URL", "CONTACT_TO", "CONTACT_FROM",
		"CORS_ALLOWED_ORIGINS", "CORS_DEFAULT_ORIGIN", "RESEND_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
	// blank values fall back to the built-in defaults
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ResendAPIKey)
	assert.Equal(t, DefaultContactTo, cfg.ContactTo)
	assert.Equal(t, DefaultContactFrom, cfg.ContactFrom)
	assert.Equal(t, []string{"https://iz-tecum.github.io", "https://cueconsociety.vercel.app"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://iz-tecum.github.io", cfg.DefaultOrigin)
	assert.Equal(t, 10*time.Second, cfg.ResendTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "  re_test  ")
	t.Setenv("CONTACT_TO", "inbox@example.com")
	t.Setenv("CONTACT_FROM", "form@example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("CORS_DEFAULT_ORIGIN", "https://b.example")
	t.Setenv("RESEND_TIMEOUT_SECONDS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "re_test", cfg.ResendAPIKey)
	assert.Equal(t, "inbox@example.com", cfg.ContactTo)
	assert.Equal(t, "form@example.com", cfg.ContactFrom)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://b.example", cfg.DefaultOrigin)
	assert.Equal(t, time.Duration(0), cfg.ResendTimeout)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "nope")
	assert.True(t, getEnvBool("METRICS_ENABLED", true))

	t.Setenv("METRICS_ENABLED", "false")
	assert.False(t, getEnvBool("METRICS_ENABLED", true))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())

	t.Setenv("APP_ENV", "staging")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
}
