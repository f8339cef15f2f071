// Package clients holds the outbound side of the order service: the shared
// HTTP core, the bearer-token capability and the typed clients for the
// inventory and payment services.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Client is the shared outbound HTTP core. It attaches the bearer credential,
// opens a client span per call, propagates the trace context, and turns
// non-2xx statuses into errors. Timeouts are enforced by the injected
// http.Client and the request context; a timed-out call resolves to an error
// like any other failure.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	tracer     trace.Tracer
}

// NewClient creates the shared outbound HTTP core. tokens may be nil when the
// collaborators require no authentication.
func NewClient(httpClient *http.Client, tokens TokenSource) *Client {
	return &Client{
		httpClient: httpClient,
		tokens:     tokens,
		tracer:     otel.Tracer("ordersvc/clients"),
	}
}

// do issues the request and, when out is non-nil, decodes the JSON response
// body into it. body, when non-nil, is marshaled to JSON.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid request URL %q: %w", rawURL, err)
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s %s", method, parsed.Path),
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to acquire bearer token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	span.SetAttributes(
		attribute.String("http.url", rawURL),
		attribute.String("http.method", method),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("%s %s returned status %s", method, rawURL, resp.Status)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
		}
	}
	return nil
}
