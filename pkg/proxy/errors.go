package proxy

import (
	"errors"
	"net/http"

	"mercator-hq/callisto/pkg/providers"
)

// internalErrorMessage is returned for failures that must not leak details.
const internalErrorMessage = "An internal error occurred. Please try again later."

// HandleError converts any error into a GatewayError suitable for a client.
//
// A GatewayError anywhere in the chain is returned as is. Anything else is
// reported as a generic 500 so internal error text never reaches the client.
//
// Example usage:
//
//	if err != nil {
//	    gerr := HandleError(err)
//	    WriteJSONResponse(w, gerr.Status, gerr)
//	    return
//	}
func HandleError(err error) *providers.GatewayError {
	var gerr *providers.GatewayError
	if errors.As(err, &gerr) {
		if gerr.Status == 0 {
			gerr.Status = http.StatusInternalServerError
		}
		return gerr
	}

	return NewInternalError(err)
}

// NewInternalError reports an unexpected server-side failure.
func NewInternalError(cause error) *providers.GatewayError {
	return &providers.GatewayError{
		Message: internalErrorMessage,
		Status:  http.StatusInternalServerError,
		Kind:    FaultInternal,
		Cause:   cause,
	}
}

// FaultInternal classifies failures inside the gateway itself, such as a
// recovered panic.
const FaultInternal providers.FaultKind = "internal"
