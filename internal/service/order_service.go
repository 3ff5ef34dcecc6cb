package service

import (
	"context"
	"errors"

	"toystore/internal/models"
	"toystore/internal/store"
	"toystore/internal/validation"
)

var (
	// ErrEmptyOrder rejects orders with no line items before schema
	// validation runs, so the caller sees 400 rather than 422.
	ErrEmptyOrder = errors.New("order must contain at least one item")
)

// OrderService handles order intake. Orders are write-only: there are no
// read, update or delete paths, no stock decrement and no verification of
// submitted totals against current toy prices.
type OrderService struct {
	store store.Store
}

// NewOrderService creates a new order service.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{
		store: st,
	}
}

// Create validates and persists an order, returning its generated id.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (string, error) {
	if !s.store.Available() {
		return "", store.ErrUnavailable
	}

	if len(req.Items) == 0 {
		return "", ErrEmptyOrder
	}

	if err := validation.Struct(req); err != nil {
		return "", err
	}

	return s.store.Insert(ctx, store.CollectionOrder, req.Order())
}
