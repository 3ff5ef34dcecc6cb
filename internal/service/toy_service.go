package service

import (
	"context"

	"toystore/internal/models"
	"toystore/internal/store"
	"toystore/internal/validation"
)

// MaxListResults caps how many toys a single list request returns.
const MaxListResults = 100

// ToyFilter holds the optional list filters. Category matches exactly,
// Query matches a case-insensitive substring of the toy name. Both combine
// with logical AND.
type ToyFilter struct {
	Category string
	Query    string
}

// ToyService handles business logic for the toy catalog.
type ToyService struct {
	store store.Store
}

// NewToyService creates a new toy service.
func NewToyService(st store.Store) *ToyService {
	return &ToyService{
		store: st,
	}
}

// List returns up to MaxListResults toys matching the filter. When the
// store is unavailable it returns an empty slice rather than an error, so
// the listing endpoint always responds.
func (s *ToyService) List(ctx context.Context, filter ToyFilter) ([]models.Toy, error) {
	f := store.Filter{}
	if filter.Category != "" {
		f.Equal = map[string]string{"category": filter.Category}
	}
	if filter.Query != "" {
		f.Contains = map[string]string{"name": filter.Query}
	}

	toys := make([]models.Toy, 0)
	if err := s.store.Query(ctx, store.CollectionToy, f, MaxListResults, &toys); err != nil {
		return nil, err
	}
	return toys, nil
}

// Create validates the payload and persists a new toy, returning its
// generated id. The availability check runs first so an unconfigured store
// yields ErrUnavailable before any validation happens.
func (s *ToyService) Create(ctx context.Context, req models.CreateToyRequest) (string, error) {
	if !s.store.Available() {
		return "", store.ErrUnavailable
	}

	if err := validation.Struct(req); err != nil {
		return "", err
	}

	return s.store.Insert(ctx, store.CollectionToy, req.Toy())
}

// Get fetches a single toy by id. Returns store.ErrInvalidID for malformed
// ids and store.ErrNotFound when no toy matches.
func (s *ToyService) Get(ctx context.Context, id string) (*models.Toy, error) {
	if !s.store.Available() {
		return nil, store.ErrUnavailable
	}

	var toy models.Toy
	if err := s.store.FindByID(ctx, store.CollectionToy, id, &toy); err != nil {
		return nil, err
	}
	return &toy, nil
}
