package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore implements Store with in-process storage. Documents round-trip
// through bson so the same struct tags drive both this store and MongoDB.
// Used by tests and local development without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryDoc
}

type memoryDoc struct {
	id  primitive.ObjectID
	raw bson.Raw
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]memoryDoc),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	var fields bson.M
	if err := bson.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("unmarshal document: %w", err)
	}

	id := primitive.NewObjectID()
	fields["_id"] = id

	raw, err := bson.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal document with id: %w", err)
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], memoryDoc{id: id, raw: raw})
	s.mu.Unlock()

	return id.Hex(), nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filter Filter, limit int64, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slice := reflect.ValueOf(dest).Elem()
	elemType := slice.Type().Elem()

	var matched int64
	for _, doc := range s.collections[collection] {
		if matched >= limit {
			break
		}

		ok, err := matches(doc.raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		elem := reflect.New(elemType)
		if err := bson.Unmarshal(doc.raw, elem.Interface()); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
		matched++
	}

	return nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string, dest any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc.id == oid {
			if err := bson.Unmarshal(doc.raw, dest); err != nil {
				return fmt.Errorf("decode document: %w", err)
			}
			return nil
		}
	}

	return ErrNotFound
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		ok, err := matches(doc.raw, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStore) Available() bool {
	return true
}

// matches applies Filter semantics to a raw document: exact match for Equal
// entries, case-insensitive substring for Contains entries, AND-combined.
func matches(raw bson.Raw, filter Filter) (bool, error) {
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return false, fmt.Errorf("decode document: %w", err)
	}

	for field, want := range filter.Equal {
		got, ok := fields[field].(string)
		if !ok || got != want {
			return false, nil
		}
	}

	for field, needle := range filter.Contains {
		got, ok := fields[field].(string)
		if !ok || !strings.Contains(strings.ToLower(got), strings.ToLower(needle)) {
			return false, nil
		}
	}

	return true, nil
}
