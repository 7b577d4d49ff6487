package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer.
// It sets the appropriate content-type header and handles marshaling errors.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteError writes err as the canonical {"error", "details"} body using the
// status it carries. Errors that are not GatewayErrors become a 500.
func WriteError(w http.ResponseWriter, err error) error {
	gerr := HandleError(err)
	return WriteJSONResponse(w, gerr.Status, gerr)
}
