package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/proxy"
)

// ChatHandler serves POST /v1/chat: it decodes the canonical request,
// dispatches it and writes the canonical response or error.
type ChatHandler struct {
	Dispatcher Dispatcher

	// MaxBodyBytes caps the request body; zero means proxy.DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(d Dispatcher, maxBodyBytes int64) *ChatHandler {
	return &ChatHandler{Dispatcher: d, MaxBodyBytes: maxBodyBytes}
}

// ServeHTTP implements http.Handler.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		gerr := providers.NewInvalidRequestError(
			fmt.Sprintf("Method %s not allowed. Use POST instead.", r.Method), nil)
		gerr.Status = http.StatusMethodNotAllowed
		writeError(w, r, gerr)
		return
	}

	req, gerr := proxy.DecodeChatRequest(w, r, h.MaxBodyBytes)
	if gerr != nil {
		slog.WarnContext(ctx, "failed to decode chat request", "error", gerr.Message)
		writeError(w, r, gerr)
		return
	}

	resp, err := h.Dispatcher.Dispatch(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := proxy.WriteJSONResponse(w, http.StatusOK, resp); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if werr := proxy.WriteError(w, err); werr != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", werr)
	}
}
