package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/platform/tracing"
	"bizdash/internal/shared/auth"
)

const (
	maxErrorBody    = 64 << 10
	maxResponseBody = 8 << 20
)

// ResourceClientConfig wires a ResourceClient.
type ResourceClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	SelfSignedHosts []string
	// Tokens supplies the bearer token per call. Nil means calls are sent without one.
	Tokens       auth.TokenProvider
	RequireToken bool
	// HTTPClient is copied; its transport is wrapped with the self-signed host exception.
	HTTPClient *http.Client
	Metrics    *Metrics
	// Tracer opens a span per call and forwards trace context upstream. Nil disables it.
	Tracer *tracing.Tracer
}

// ResourceClient implements port.ResourceClient against the dashboard REST API.
type ResourceClient struct {
	rest         *RESTClient
	tokens       auth.TokenProvider
	requireToken bool
	metrics      *Metrics
	tracer       *tracing.Tracer
}

func NewResourceClient(cfg ResourceClientConfig) *ResourceClient {
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		httpClient = &copied
	}
	httpClient.Transport = NewTransport(cfg.SelfSignedHosts, httpClient.Transport)

	tokens := cfg.Tokens
	if tokens == nil {
		tokens = auth.StaticToken("")
	}
	return &ResourceClient{
		rest:         NewRESTClient(cfg.BaseURL, cfg.Timeout, httpClient),
		tokens:       tokens,
		requireToken: cfg.RequireToken,
		metrics:      cfg.Metrics,
		tracer:       cfg.Tracer,
	}
}

// invoke performs one operation and decodes a 2xx body into T. Every failure is logged
// here and returned unchanged to the caller; nothing is retried.
func invoke[T any](ctx context.Context, c *ResourceClient, op string, body requestBody, params ...string) (T, error) {
	var result T
	ep, ok := endpoints[op]
	if !ok {
		return result, fmt.Errorf("unknown operation %q", op)
	}

	ctx, span := c.tracer.Start(ctx, "dashboard."+op)
	defer span.End()

	started := time.Now()
	status, err := c.call(ctx, op, ep, body, params, &result)
	c.metrics.observe(op, status, time.Since(started))
	span.SetAttributes(attribute.String("dashboard.operation", op), attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("dashboard api call failed", slog.String("operation", op), slog.Int("status", status), slog.Any("error", err))
		var zero T
		return zero, err
	}
	return result, nil
}

// listOf fetches a collection and validates every record at the boundary.
func listOf[T domain.Validator](ctx context.Context, c *ResourceClient, op string, params ...string) ([]T, error) {
	items, err := invoke[[]T](ctx, c, op, nil, params...)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAll(items); err != nil {
		return nil, invalidPayload(op, err)
	}
	return items, nil
}

// one performs an operation returning a single record and validates it.
func one[T domain.Validator](ctx context.Context, c *ResourceClient, op string, body requestBody, params ...string) (T, error) {
	item, err := invoke[T](ctx, c, op, body, params...)
	if err != nil {
		return item, err
	}
	if err := item.Validate(); err != nil {
		var zero T
		return zero, invalidPayload(op, err)
	}
	return item, nil
}

func invalidPayload(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w: %w", op, port.ErrInvalidPayload, err)
	slog.Error("dashboard api payload rejected", slog.String("operation", op), slog.Any("error", err))
	return wrapped
}

func (c *ResourceClient) call(ctx context.Context, op string, ep endpoint, body requestBody, params []string, target any) (int, error) {
	path, err := ep.path(params)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: token provider: %w", op, err)
	}
	token = strings.TrimSpace(token)
	if token == "" && c.requireToken {
		return 0, fmt.Errorf("%s: %w", op, auth.ErrMissingToken)
	}

	var reader io.Reader
	contentType := ""
	if body != nil {
		if reader, contentType, err = body.encode(); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	req, err := c.rest.NewRequest(ctx, ep.method, path, reader)
	if err != nil {
		return 0, fmt.Errorf("%s: build request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	c.tracer.InjectHTTP(ctx, req.Header)
	slog.Debug("dashboard api request", slog.String("operation", op), slog.String("method", ep.method), slog.String("url", req.URL.String()))

	res, err := c.rest.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s request failed: %w", op, err)
	}
	defer res.Body.Close()
	slog.Debug("dashboard api response", slog.String("operation", op), slog.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return res.StatusCode, apiErrorFrom(op, ep, res)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		return res.StatusCode, fmt.Errorf("%s: read response: %w", op, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return res.StatusCode, nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return res.StatusCode, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return res.StatusCode, nil
}

// apiErrorFrom prefers the server's {"message": ...} and falls back to the endpoint's
// fixed description when the body is absent, unparsable or has no message.
func apiErrorFrom(op string, ep endpoint, res *http.Response) *APIError {
	message := ep.fallback
	data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		message = payload.Message
	} else if len(data) > 0 {
		slog.Debug("dashboard api error body ignored", slog.String("operation", op), slog.String("body", strings.TrimSpace(string(data))))
	}
	return &APIError{Operation: op, Status: res.StatusCode, Message: message}
}

// APIError is an alias so callers of this package need not import port for type assertions.
type APIError = port.APIError

var _ port.ResourceClient = (*ResourceClient)(nil)
