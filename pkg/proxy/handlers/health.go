package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"mercator-hq/callisto/pkg/proxy"
)

// HealthHandler handles health check requests for liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler for liveness checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	}

	if err := proxy.WriteJSONResponse(w, http.StatusOK, response); err != nil {
		slog.ErrorContext(r.Context(), "failed to write health response", "error", err)
	}
}

// ReadyHandler handles readiness check requests.
//
// The gateway is ready when at least one provider has a credential. The
// body lists every provider with its configured flag; key values are never
// included.
type ReadyHandler struct {
	Providers ProviderStatus
}

// NewReadyHandler creates a new readiness check handler.
func NewReadyHandler(ps ProviderStatus) *ReadyHandler {
	return &ReadyHandler{Providers: ps}
}

// ServeHTTP implements http.Handler for readiness checks.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	configured := h.Providers.Status()

	isReady := false
	for _, ok := range configured {
		if ok {
			isReady = true
			break
		}
	}

	status := "ready"
	statusCode := http.StatusOK
	if !isReady {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    status,
		"providers": configured,
		"timestamp": time.Now().Unix(),
	}

	if err := proxy.WriteJSONResponse(w, statusCode, response); err != nil {
		slog.ErrorContext(r.Context(), "failed to write ready response", "error", err)
	}
}
