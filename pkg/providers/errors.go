package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// FaultKind classifies a GatewayError by where the failure originated.
type FaultKind string

const (
	// FaultUnknownProvider means the request named a provider the gateway does not know.
	FaultUnknownProvider FaultKind = "unknown_provider"

	// FaultConfiguration means the selected provider has no credential configured.
	FaultConfiguration FaultKind = "configuration"

	// FaultTransport means the upstream could not be reached or its body could not be read.
	FaultTransport FaultKind = "transport"

	// FaultUpstream means the provider answered with a non-2xx status.
	FaultUpstream FaultKind = "upstream"

	// FaultInvalidRequest means the caller's request could not be decoded.
	FaultInvalidRequest FaultKind = "invalid_request"
)

// GatewayError is the canonical error returned for every failed dispatch.
// It encodes as {"error": ..., "details": ...}; Status and Kind travel
// out of band.
type GatewayError struct {
	// Message is the human-readable error message
	Message string `json:"error"`

	// Details holds the upstream error body when one was received
	Details json.RawMessage `json:"details,omitempty"`

	// Status is the HTTP status code to report to the caller
	Status int `json:"-"`

	// Kind is the fault classification
	Kind FaultKind `json:"-"`

	// Cause is the underlying error (if any)
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chain support.
func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// NewUnknownProviderError reports a provider outside the supported set.
func NewUnknownProviderError(provider string) *GatewayError {
	return &GatewayError{
		Message: fmt.Sprintf("Unknown provider: %s", provider),
		Status:  http.StatusBadRequest,
		Kind:    FaultUnknownProvider,
	}
}

// NewConfigurationError reports a missing credential for the named provider.
func NewConfigurationError(displayName string) *GatewayError {
	return &GatewayError{
		Message: fmt.Sprintf("%s API key not configured on server", displayName),
		Status:  http.StatusInternalServerError,
		Kind:    FaultConfiguration,
	}
}

// NewTransportError wraps a connection-level failure. When cause is a
// *TransportError the message carries its underlying detail only.
func NewTransportError(cause error) *GatewayError {
	detail := cause
	var te *TransportError
	if errors.As(cause, &te) && te.Cause != nil {
		detail = te.Cause
	}
	return &GatewayError{
		Message: fmt.Sprintf("Request failed: %v", detail),
		Status:  http.StatusInternalServerError,
		Kind:    FaultTransport,
		Cause:   cause,
	}
}

// NewInvalidRequestError reports a request the gateway could not accept.
func NewInvalidRequestError(message string, cause error) *GatewayError {
	return &GatewayError{
		Message: message,
		Status:  http.StatusBadRequest,
		Kind:    FaultInvalidRequest,
		Cause:   cause,
	}
}

// MapUpstreamError converts a non-2xx upstream reply into a GatewayError.
//
// The message is taken from error.message in the body when present, otherwise
// "<displayName> API error". Details carry the parsed body verbatim, or null
// when the body is not JSON. The upstream status is preserved.
func MapUpstreamError(displayName string, status int, body []byte) *GatewayError {
	gerr := &GatewayError{
		Message: fmt.Sprintf("%s API error", displayName),
		Details: json.RawMessage("null"),
		Status:  status,
		Kind:    FaultUpstream,
	}

	if !json.Valid(body) {
		return gerr
	}
	gerr.Details = append(json.RawMessage(nil), body...)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	// A body whose "error" is not an object still counts as parsed.
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		gerr.Message = envelope.Error.Message
	}

	return gerr
}

// TransportError represents a connection-level failure talking to a provider:
// DNS, refused connection, TLS, timeout, or an unreadable body.
type TransportError struct {
	// Provider is the name of the provider being called
	Provider string

	// URL is the endpoint that was called
	URL string

	// Timeout is set when the failure was the configured deadline
	Timeout time.Duration

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("provider %q request timeout after %s: %v", e.Provider, e.Timeout, e.Cause)
	}
	return fmt.Sprintf("provider %q request failed: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *TransportError) Unwrap() error {
	return e.Cause
}
