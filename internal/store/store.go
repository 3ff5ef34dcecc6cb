package store

import (
	"context"
	"errors"
)

// Collection names used by this service.
const (
	CollectionToy   = "toy"
	CollectionOrder = "order"
)

var (
	// ErrUnavailable indicates the store was never configured or reachable.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrInvalidID indicates an id that is not well-formed for the store.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNotFound indicates a well-formed id with no matching document.
	ErrNotFound = errors.New("document not found")
)

// Filter selects documents by field value. Equal entries match exactly,
// Contains entries match a case-insensitive substring. All entries combine
// with logical AND.
type Filter struct {
	Equal    map[string]string
	Contains map[string]string
}

// Store is the gateway to the document database. dest arguments must be
// pointers: a slice pointer for Query, a document pointer for FindByID.
type Store interface {
	// Insert persists one document and returns its generated id as a hex
	// string.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Query decodes at most limit matching documents into dest. An
	// unavailable store leaves dest untouched and returns nil so read
	// paths degrade to empty results.
	Query(ctx context.Context, collection string, filter Filter, limit int64, dest any) error

	// FindByID decodes the document with the given id into dest. Returns
	// ErrInvalidID for malformed ids and ErrNotFound for well-formed ids
	// with no match.
	FindByID(ctx context.Context, collection, id string, dest any) error

	// Count returns the number of documents matching the filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Collections lists existing collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)

	// Available reports whether the store can serve writes and lookups.
	// Handlers use it to fail fast with 503 before validating payloads.
	Available() bool
}

// Disabled is a Store standing in when no database is configured or the
// initial connection failed. Reads degrade to empty results, everything
// else reports ErrUnavailable.
type Disabled struct{}

// NewDisabled creates a store that is permanently unavailable.
func NewDisabled() *Disabled {
	return &Disabled{}
}

func (*Disabled) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", ErrUnavailable
}

func (*Disabled) Query(ctx context.Context, collection string, filter Filter, limit int64, dest any) error {
	return nil
}

func (*Disabled) FindByID(ctx context.Context, collection, id string, dest any) error {
	return ErrUnavailable
}

func (*Disabled) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return 0, ErrUnavailable
}

func (*Disabled) Collections(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (*Disabled) Available() bool {
	return false
}
