// Package respond writes the JSON bodies shared by all handlers.
// Errors always take the shape {"error": ..., "details": ...}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("respond: encode payload failed", "error", err)
	}
}

// Message writes a {"message": ...} body.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// Error writes an {"error": ...} body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

// ErrorDetails writes an {"error": ..., "details": ...} body, used for
// 500 responses with best-effort cause passthrough.
func ErrorDetails(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, errorBody{Error: message, Details: details})
}
