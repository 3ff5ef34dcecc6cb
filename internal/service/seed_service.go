package service

import (
	"context"
	"log/slog"

	"toystore/internal/models"
	"toystore/internal/store"
)

// Seed statuses reported to the caller.
const (
	SeedStatusUnavailable   = "Database unavailable"
	SeedStatusAlreadySeeded = "already-seeded"
	SeedStatusSeeded        = "seeded"
)

// SeedResult reports what a seeding run did. Count is the pre-existing toy
// count on the already-seeded path; Inserted and Failed tally the
// best-effort insert loop on the seeding path.
type SeedResult struct {
	Status   string `json:"status"`
	Count    *int64 `json:"count,omitempty"`
	Inserted *int   `json:"inserted,omitempty"`
	Failed   *int   `json:"failed,omitempty"`
}

// SeedService bootstraps the toy collection with sample data.
type SeedService struct {
	store store.Store
	log   *slog.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(st store.Store, log *slog.Logger) *SeedService {
	return &SeedService{
		store: st,
		log:   log,
	}
}

// sampleToys is the fixed catalog inserted into an empty store.
var sampleToys = []models.Toy{
	{
		Name:        "Cuddly Bear",
		Description: "Super soft plush bear.",
		Price:       19.99,
		Category:    "Plush",
		Image:       "https://images.unsplash.com/photo-1612198185720-2d3a9c5a4f8e",
		Rating:      4.7,
		InStock:     true,
	},
	{
		Name:        "Rainbow Stacking Rings",
		Description: "Classic stacking rings for toddlers.",
		Price:       14.99,
		Category:    "Educational",
		Image:       "https://images.unsplash.com/photo-1582582621959-48f5f1d7fca1",
		Rating:      4.6,
		InStock:     true,
	},
	{
		Name:        "STEM Robot Kit",
		Description: "Build and program your own robot.",
		Price:       49.99,
		Category:    "STEM",
		Image:       "https://images.unsplash.com/photo-1581090464777-f3220bbe1b8b",
		Rating:      4.8,
		InStock:     true,
	},
}

// Seed inserts the sample catalog if the toy collection is empty. The run
// is idempotent: any pre-existing toys make it a no-op reporting their
// count. Inserts are best-effort; individual failures are logged, tallied
// and skipped.
func (s *SeedService) Seed(ctx context.Context) SeedResult {
	if !s.store.Available() {
		return SeedResult{Status: SeedStatusUnavailable}
	}

	count, err := s.store.Count(ctx, store.CollectionToy, store.Filter{})
	if err != nil {
		s.log.Error("failed to count toys before seeding", "error", err)
		return SeedResult{Status: SeedStatusUnavailable}
	}

	if count > 0 {
		return SeedResult{Status: SeedStatusAlreadySeeded, Count: &count}
	}

	inserted, failed := 0, 0
	for _, toy := range sampleToys {
		if _, err := s.store.Insert(ctx, store.CollectionToy, toy); err != nil {
			s.log.Warn("failed to insert sample toy", "name", toy.Name, "error", err)
			failed++
			continue
		}
		inserted++
	}

	return SeedResult{Status: SeedStatusSeeded, Inserted: &inserted, Failed: &failed}
}
