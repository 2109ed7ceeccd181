package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// Document is a single record in a collection. The "_id" key holds the
// document's ID once it has been inserted.
type Document map[string]any

// IDKey is the document key that holds the primary identifier.
const IDKey = "_id"

// ID returns the document's identifier, or "" if it has none yet.
func (d Document) ID() ID {
	id, _ := AsID(d[IDKey])
	return id
}

// String returns the string value stored under key, or "" if absent.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Filter is an equality match on top-level document fields. A field that
// holds an array matches when any element equals the filter value. The
// empty filter matches every document.
type Filter map[string]any

// Collection is the collection-like contract the seeding pipeline writes
// through.
type Collection interface {
	// Name returns the collection name.
	Name() string
	// InsertMany inserts docs in order and returns the acknowledged IDs.
	// Documents without an "_id" are assigned one in place.
	InsertMany(ctx context.Context, docs []Document) ([]ID, error)
	// Create inserts a single document and returns it with its ID set.
	Create(ctx context.Context, doc Document) (Document, error)
	// DeleteMany removes every document matching filter.
	DeleteMany(ctx context.Context, filter Filter) (int64, error)
	// Find returns the documents matching filter in insertion order.
	Find(ctx context.Context, filter Filter) ([]Document, error)
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Store is a connected document database.
type Store interface {
	Collection(name string) Collection
	// Disconnect releases the underlying connection.
	Disconnect(ctx context.Context) error
}

// FindOne returns the first document in c matching filter, or ErrNotFound.
func FindOne(ctx context.Context, c Collection, filter Filter) (Document, error) {
	docs, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}
