package web

// respond.go provides the JSON response helpers shared by all handlers.
// Errors are logged with full detail server-side; clients get a compact
// {"error": ...} envelope.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabiandarga/employee-import/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent, logging is all that's left
		slog.Error("json encode failed", "error", err)
	}
}

// writeError logs the failure with request context and writes the JSON
// error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Warn("request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", message,
	)
	writeJSON(w, status, errorResponse{Error: message})
}
