package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"toystore/internal/validation"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteValidationError writes a 422 response enumerating every offending
// field of a rejected payload.
func WriteValidationError(w http.ResponseWriter, verr *validation.Error, logger *slog.Logger) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":   "Validation failed",
		"details": verr.Fields,
	}, logger)
}
