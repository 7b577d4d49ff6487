package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticStatus map[string]bool

func (s staticStatus) Status() map[string]bool { return s }

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", w.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name       string
		status     staticStatus
		wantCode   int
		wantStatus string
	}{
		{
			name:       "one configured",
			status:     staticStatus{"openai": true, "anthropic": false},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name:       "none configured",
			status:     staticStatus{"openai": false, "anthropic": false},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewReadyHandler(tt.status).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}

			var body struct {
				Status    string          `json:"status"`
				Providers map[string]bool `json:"providers"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tt.wantStatus)
			}
			for name, want := range tt.status {
				if body.Providers[name] != want {
					t.Errorf("providers[%s] = %v, want %v", name, body.Providers[name], want)
				}
			}
		})
	}
}
