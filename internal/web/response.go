package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the body of every JSON error.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON sends data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent.
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError sends a generic 500 and logs the cause. Internal details never
// reach the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
