package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/johnwards/learnseed/internal/database"
	"github.com/johnwards/learnseed/internal/store"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production. The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewTestStore returns a migrated in-memory document store.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return store.NewSQLiteStore(db)
}

// CountDocs returns the number of documents in a collection, failing the
// test on error.
func CountDocs(t *testing.T, s store.Store, collection string) int {
	t.Helper()

	n, err := s.Collection(collection).Count(context.Background(), store.Filter{})
	if err != nil {
		t.Fatalf("count %s: %v", collection, err)
	}
	return int(n)
}
