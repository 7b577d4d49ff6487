package proxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"mercator-hq/callisto/pkg/providers"
)

const (
	// DefaultMaxBodyBytes caps a chat request body when no limit is configured (10MB).
	DefaultMaxBodyBytes = 10 * 1024 * 1024

	// RequestIDHeader is the HTTP header for request ID propagation.
	RequestIDHeader = "X-Request-ID"
)

// DecodeChatRequest reads the canonical chat request from the body of r.
//
// The body is read through http.MaxBytesReader so a client cannot stream
// an unbounded payload. Malformed JSON is reported as a 400 GatewayError
// whose message starts with "Invalid request body: "; an oversized body is
// reported with status 413.
//
// Example usage:
//
//	req, gerr := DecodeChatRequest(w, r, cfg.MaxBodyBytes)
//	if gerr != nil {
//	    WriteError(w, gerr)
//	    return
//	}
func DecodeChatRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*providers.ChatRequest, *providers.GatewayError) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			gerr := providers.NewInvalidRequestError(
				fmt.Sprintf("Invalid request body: exceeds maximum size of %d bytes", tooLarge.Limit), err)
			gerr.Status = http.StatusRequestEntityTooLarge
			return nil, gerr
		}
		return nil, providers.NewInvalidRequestError(fmt.Sprintf("Invalid request body: %v", err), err)
	}

	var req providers.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, providers.NewInvalidRequestError(fmt.Sprintf("Invalid request body: %v", err), err)
	}

	return &req, nil
}
