package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// RawResponse is an upstream reply as received: any HTTP status, unparsed body.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the upstream answered with a 2xx status.
// Any 200-299 reply, not only 200, goes to the response normalizer.
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs the single outbound POST of a dispatch.
//
// It shares one pooled http.Client across providers. There is no retry: a
// non-2xx status is a normal result, and only connection-level failures
// (including the deadline) are returned as *TransportError.
type Transport struct {
	config TransportConfig
	client *http.Client
}

// NewTransport creates a transport with connection pooling.
func NewTransport(config TransportConfig) *Transport {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &Transport{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
	}
}

// NewTransportWithClient creates a transport around an existing client.
// The client's own timeout applies.
func NewTransportWithClient(client *http.Client) *Transport {
	return &Transport{
		config: TransportConfig{Timeout: client.Timeout},
		client: client,
	}
}

// Timeout returns the per-call deadline.
func (t *Transport) Timeout() time.Duration {
	return t.config.Timeout
}

// Send POSTs call.Body to call.URL with Content-Type application/json and the
// call's headers, and returns the reply whatever its status.
func (t *Transport) Send(ctx context.Context, call *Call) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, call.URL, bytes.NewReader(call.Body))
	if err != nil {
		return nil, t.fail(call, fmt.Errorf("failed to create request: %w", err))
	}

	for key, value := range call.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("sending request to provider",
		"provider", call.Provider,
		"url", call.URL,
		"model", call.Model,
	)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, t.fail(call, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, t.fail(call, fmt.Errorf("failed to read response: %w", err))
	}

	slog.Debug("received provider response",
		"provider", call.Provider,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return &RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

// Close releases idle pooled connections.
func (t *Transport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

func (t *Transport) fail(call *Call, cause error) *TransportError {
	te := &TransportError{
		Provider: call.Provider,
		URL:      call.URL,
		Cause:    cause,
	}
	var netErr net.Error
	if errors.Is(cause, context.DeadlineExceeded) || (errors.As(cause, &netErr) && netErr.Timeout()) {
		te.Timeout = t.config.Timeout
	}

	slog.Warn("provider request failed",
		"provider", call.Provider,
		"url", call.URL,
		"error", cause,
	)
	return te
}
