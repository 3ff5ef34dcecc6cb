package handlers

import (
	"log/slog"
	"net/http"
)

// RootHandler serves the liveness and hello endpoints.
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{
		logger: logger,
	}
}

// Root handles GET /
func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Toy Store Backend Running"}, h.logger)
}

// Hello handles GET /api/hello
func (h *RootHandler) Hello(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Hello from the Toy Store API!"}, h.logger)
}
