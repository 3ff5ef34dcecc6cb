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
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
// - 201: created, body {"order_id": "<hex>"}
// - 400: malformed JSON or empty items
// - 422: schema validation failure with field details
// - 503: store unavailable
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderID, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.Is(err, store.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, "Database unavailable", h.log)
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.As(err, &verr):
			h.log.Info("order payload rejected", "fields", verr.Error())
			WriteValidationError(w, verr, h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("order created", "order_id", orderID, "items_count", len(req.Items))
	WriteJSON(w, http.StatusCreated, map[string]string{"order_id": orderID}, h.log)
}
