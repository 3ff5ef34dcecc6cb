package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"toystore/internal/store"
)

// maxReportedCollections truncates the collection listing in diagnostics.
const maxReportedCollections = 10

// DiagnosticsHandler reports store connectivity. It exists for operators
// poking at a fresh deployment, so every failure is rendered as a
// descriptive string in a 200 response and nothing ever propagates as an
// HTTP error.
type DiagnosticsHandler struct {
	store   store.Store
	urlSet  bool
	nameSet bool
	logger  *slog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler. urlSet and
// nameSet report whether the database URL and name were configured.
func NewDiagnosticsHandler(st store.Store, urlSet, nameSet bool, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store:   st,
		urlSet:  urlSet,
		nameSet: nameSet,
		logger:  logger,
	}
}

// DiagnosticsReport is the body returned by GET /test.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics handles GET /test
func (h *DiagnosticsHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	report := DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(h.urlSet),
		DatabaseName:     setOrNot(h.nameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store.Available() {
		report.Database = "available"
		report.ConnectionStatus = "connected"

		names, err := h.store.Collections(r.Context())
		if err != nil {
			h.logger.Warn("failed to list collections", "error", err)
			report.Database = fmt.Sprintf("connected but error: %.50s", err.Error())
		} else {
			if len(names) > maxReportedCollections {
				names = names[:maxReportedCollections]
			}
			report.Collections = names
			report.Database = "connected and working"
		}
	}

	WriteJSON(w, http.StatusOK, report, h.logger)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
