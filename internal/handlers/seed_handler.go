package handlers

import (
	"log/slog"
	"net/http"

	"toystore/internal/service"
)

// SeedHandler exposes the idempotent sample-data bootstrap.
type SeedHandler struct {
	seedService *service.SeedService
	log         *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService, log *slog.Logger) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		log:         log,
	}
}

// Seed handles GET /api/seed
// Always responds 200; the body reports what the run did (seeded with
// insert/failure tallies, already-seeded with the existing count, or
// database unavailable).
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result := h.seedService.Seed(r.Context())
	h.log.Info("seed run finished", "status", result.Status)
	WriteJSON(w, http.StatusOK, result, h.log)
}
