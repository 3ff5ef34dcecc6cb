package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"toystore/internal/models"
	"toystore/internal/service"
	"toystore/internal/store"
	"toystore/internal/validation"

	"github.com/go-chi/chi/v5"
)

// ToyHandler handles toy-related HTTP requests
type ToyHandler struct {
	service *service.ToyService
	logger  *slog.Logger
}

// NewToyHandler creates a new toy handler
func NewToyHandler(svc *service.ToyService, logger *slog.Logger) *ToyHandler {
	return &ToyHandler{
		service: svc,
		logger:  logger,
	}
}

// ListToys handles GET /api/toys
// Optional query parameters: category (exact match) and q (case-insensitive
// substring of the name). Always responds 200; an unavailable store yields
// an empty array.
func (h *ToyHandler) ListToys(w http.ResponseWriter, r *http.Request) {
	filter := service.ToyFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	toys, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list toys", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, toys, h.logger)
}

// CreateToy handles POST /api/toys
// - 201: created, body {"_id": "<hex>"}
// - 400: malformed JSON body
// - 422: schema validation failure with field details
// - 503: store unavailable
func (h *ToyHandler) CreateToy(w http.ResponseWriter, r *http.Request) {
	var req models.CreateToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode toy payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.Is(err, store.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, "Database unavailable", h.logger)
		case errors.As(err, &verr):
			h.logger.Info("toy payload rejected", "fields", verr.Error())
			WriteValidationError(w, verr, h.logger)
		default:
			h.logger.Error("failed to create toy", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("toy created", "toy_id", id)
	WriteJSON(w, http.StatusCreated, map[string]string{"_id": id}, h.logger)
}

// GetToy handles GET /api/toys/{toyID}
// - 200: the toy document
// - 400: malformed id
// - 404: well-formed id with no match
// - 503: store unavailable
func (h *ToyHandler) GetToy(w http.ResponseWriter, r *http.Request) {
	toyID := chi.URLParam(r, "toyID")

	toy, err := h.service.Get(r.Context(), toyID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, "Database unavailable", h.logger)
		case errors.Is(err, store.ErrInvalidID):
			h.logger.Warn("invalid toy id", "toy_id", toyID)
			WriteError(w, http.StatusBadRequest, "Invalid toy id", h.logger)
		case errors.Is(err, store.ErrNotFound):
			h.logger.Info("toy not found", "toy_id", toyID)
			WriteError(w, http.StatusNotFound, "Toy not found", h.logger)
		default:
			h.logger.Error("failed to get toy", "toy_id", toyID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toy, h.logger)
}
