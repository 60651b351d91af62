package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeHoneypot))
	RecordSubmission(OutcomeHoneypot)
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeHoneypot)))
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	RecordSubmission(OutcomeSent)
	ObserveHTTP("/api/contact", http.MethodPost, http.StatusOK, 5*time.Millisecond)
	ObserveProvider("ok", 20*time.Millisecond)

	srv := httptest.NewServer(MetricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "contact_submissions_total")
	assert.Contains(t, string(body), "contact_http_requests_total")
	assert.Contains(t, string(body), "contact_provider_request_duration_seconds")
}

func TestInitTracing(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Exporter: "none"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	shutdown, err = InitTracing(context.Background(), TracingConfig{Exporter: "stdout", ServiceName: "test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, err = InitTracing(context.Background(), TracingConfig{Exporter: "jaeger"})
	assert.Error(t, err)
}

func TestForceFlush(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Exporter: "stdout", ServiceName: "test"})
	require.NoError(t, err)
	defer shutdown(context.Background())

	assert.NoError(t, ForceFlush(context.Background()))
}

func TestTransportDefaultsBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := &http.Client{Transport: Transport(nil)}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
