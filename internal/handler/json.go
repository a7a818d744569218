package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in the "error" field of failure responses.
const (
	errMalformedRequest = "MALFORMED_REQUEST"
	errInvalidData      = "INVALID_DATA"
	errBadCredentials   = "INVALID_USERNAME_PASSWORD"
	errUnauthenticated  = "UNAUTHENTICATED"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status and code.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeFieldErrors sends a 422 response carrying per-field messages.
func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  errInvalidData,
		"errors": fields,
	})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
