// Package apigw runs an http.Handler behind API Gateway proxy events.
package apigw

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"go-contact-relay/pkg/logger"

	"github.com/aws/aws-lambda-go/events"
)

type Adapter struct {
	handler http.Handler
	flush   func(context.Context) error
}

// NewAdapter wraps handler. flush, when set, runs after every invocation so
// buffered telemetry leaves the process before Lambda freezes it.
func NewAdapter(handler http.Handler, flush func(context.Context) error) *Adapter {
	return &Adapter{handler: handler, flush: flush}
}

// Handle replays the proxy event against the wrapped handler and returns
// whatever it wrote.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := toHTTPRequest(ctx, event)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, err
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)

	if a.flush != nil {
		if err := a.flush(ctx); err != nil {
			logger.Log.Warn("Telemetry flush failed", "error", err)
		}
	}

	return toProxyResponse(w), nil
}

func toHTTPRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = string(decoded)
	}

	path := event.Path
	if path == "" {
		path = "/"
	}
	u := &url.URL{Path: path, RawQuery: queryString(event).Encode()}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, values := range event.MultiValueHeaders {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	for k, v := range event.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	if ip := event.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = net.JoinHostPort(ip, "0")
		req.Header.Set("X-Forwarded-For", ip)
	}
	if event.RequestContext.RequestID != "" && req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", event.RequestContext.RequestID)
	}
	return req, nil
}

func queryString(event events.APIGatewayProxyRequest) url.Values {
	q := url.Values{}
	for k, values := range event.MultiValueQueryStringParameters {
		for _, v := range values {
			q.Add(k, v)
		}
	}
	for k, v := range event.QueryStringParameters {
		if !q.Has(k) {
			q.Set(k, v)
		}
	}
	return q
}

func toProxyResponse(w *httptest.ResponseRecorder) events.APIGatewayProxyResponse {
	res := w.Result()
	defer res.Body.Close()

	headers := make(map[string]string, len(res.Header))
	for k, values := range res.Header {
		headers[k] = strings.Join(values, ", ")
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        res.StatusCode,
		Headers:           headers,
		MultiValueHeaders: map[string][]string(res.Header),
		Body:              w.Body.String(),
	}
}
