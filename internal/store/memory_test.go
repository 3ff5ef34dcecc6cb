package store

import (
	"context"
	"testing"

	"toystore/internal/models"
)

func TestMemoryStore_InsertAndFindByID(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	toy := models.Toy{
		Name:     "Cuddly Bear",
		Price:    19.99,
		Category: "Plush",
		Rating:   4.7,
		InStock:  true,
	}

	id, err := st.Insert(ctx, CollectionToy, toy)
	if err != nil {
		t.Fatalf("Insert() unexpected error = %v", err)
	}
	if id == "" {
		t.Fatal("Insert() returned empty id")
	}

	var got models.Toy
	if err := st.FindByID(ctx, CollectionToy, id, &got); err != nil {
		t.Fatalf("FindByID() unexpected error = %v", err)
	}

	if got.ID.Hex() != id {
		t.Errorf("decoded id = %s, want %s", got.ID.Hex(), id)
	}
	if got.Name != toy.Name {
		t.Errorf("name = %s, want %s", got.Name, toy.Name)
	}
	if got.Price != toy.Price {
		t.Errorf("price = %f, want %f", got.Price, toy.Price)
	}
	if got.Rating != toy.Rating {
		t.Errorf("rating = %f, want %f", got.Rating, toy.Rating)
	}
	if !got.InStock {
		t.Error("in_stock = false, want true")
	}
}

func TestMemoryStore_FindByID_Errors(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	var toy models.Toy

	if err := st.FindByID(ctx, CollectionToy, "not-an-id", &toy); err != ErrInvalidID {
		t.Errorf("FindByID(malformed) error = %v, want ErrInvalidID", err)
	}

	// Well-formed hex ObjectID that was never inserted
	if err := st.FindByID(ctx, CollectionToy, "65af0b1c2d3e4f5a6b7c8d9e", &toy); err != ErrNotFound {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_QueryFilters(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	seed := []models.Toy{
		{Name: "STEM Robot Kit", Category: "STEM"},
		{Name: "Cuddly Bear", Category: "Plush"},
		{Name: "Mini robot figure", Category: "STEM"},
		{Name: "Rainbow Stacking Rings", Category: "stem"},
	}
	for _, toy := range seed {
		if _, err := st.Insert(ctx, CollectionToy, toy); err != nil {
			t.Fatalf("Insert() unexpected error = %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    Filter
		wantNames map[string]bool
	}{
		{
			name:   "no filter returns everything",
			filter: Filter{},
			wantNames: map[string]bool{
				"STEM Robot Kit": true, "Cuddly Bear": true,
				"Mini robot figure": true, "Rainbow Stacking Rings": true,
			},
		},
		{
			name:      "category equality is case-sensitive",
			filter:    Filter{Equal: map[string]string{"category": "STEM"}},
			wantNames: map[string]bool{"STEM Robot Kit": true, "Mini robot figure": true},
		},
		{
			name:      "substring match is case-insensitive",
			filter:    Filter{Contains: map[string]string{"name": "robot"}},
			wantNames: map[string]bool{"STEM Robot Kit": true, "Mini robot figure": true},
		},
		{
			name: "filters combine with AND",
			filter: Filter{
				Equal:    map[string]string{"category": "STEM"},
				Contains: map[string]string{"name": "kit"},
			},
			wantNames: map[string]bool{"STEM Robot Kit": true},
		},
		{
			name:      "no matches",
			filter:    Filter{Equal: map[string]string{"category": "Puzzles"}},
			wantNames: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []models.Toy
			if err := st.Query(ctx, CollectionToy, tt.filter, 100, &got); err != nil {
				t.Fatalf("Query() unexpected error = %v", err)
			}

			if len(got) != len(tt.wantNames) {
				t.Errorf("Query() returned %d toys, want %d", len(got), len(tt.wantNames))
			}
			for _, toy := range got {
				if !tt.wantNames[toy.Name] {
					t.Errorf("Query() returned unexpected toy %q", toy.Name)
				}
			}
		})
	}
}

func TestMemoryStore_QueryLimit(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if _, err := st.Insert(ctx, CollectionToy, models.Toy{Name: "Toy", Category: "Plush"}); err != nil {
			t.Fatalf("Insert() unexpected error = %v", err)
		}
	}

	var got []models.Toy
	if err := st.Query(ctx, CollectionToy, Filter{}, 5, &got); err != nil {
		t.Fatalf("Query() unexpected error = %v", err)
	}

	if len(got) != 5 {
		t.Errorf("Query() returned %d toys, want limit 5", len(got))
	}
}

func TestMemoryStore_Count(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if n, err := st.Count(ctx, CollectionToy, Filter{}); err != nil || n != 0 {
		t.Errorf("Count() on empty store = %d, %v, want 0, nil", n, err)
	}

	for _, category := range []string{"Plush", "Plush", "STEM"} {
		if _, err := st.Insert(ctx, CollectionToy, models.Toy{Name: "Toy", Category: category}); err != nil {
			t.Fatalf("Insert() unexpected error = %v", err)
		}
	}

	n, err := st.Count(ctx, CollectionToy, Filter{})
	if err != nil {
		t.Fatalf("Count() unexpected error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	n, err = st.Count(ctx, CollectionToy, Filter{Equal: map[string]string{"category": "Plush"}})
	if err != nil {
		t.Fatalf("Count() unexpected error = %v", err)
	}
	if n != 2 {
		t.Errorf("Count(Plush) = %d, want 2", n)
	}
}

func TestDisabledStore(t *testing.T) {
	st := NewDisabled()
	ctx := context.Background()

	if st.Available() {
		t.Error("Available() = true, want false")
	}

	if _, err := st.Insert(ctx, CollectionToy, models.Toy{Name: "Toy"}); err != ErrUnavailable {
		t.Errorf("Insert() error = %v, want ErrUnavailable", err)
	}

	var toy models.Toy
	if err := st.FindByID(ctx, CollectionToy, "65af0b1c2d3e4f5a6b7c8d9e", &toy); err != ErrUnavailable {
		t.Errorf("FindByID() error = %v, want ErrUnavailable", err)
	}

	// Reads degrade to empty results, not errors
	var toys []models.Toy
	if err := st.Query(ctx, CollectionToy, Filter{}, 100, &toys); err != nil {
		t.Errorf("Query() error = %v, want nil", err)
	}
	if len(toys) != 0 {
		t.Errorf("Query() returned %d toys, want 0", len(toys))
	}
}
