package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// SQLiteStore implements Store on top of the documents table. Bodies are
// kept as relaxed MongoDB Extended JSON so IDs and dates survive a round
// trip with the same types the Mongo backend returns.
type SQLiteStore struct {
	DB *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore. The schema must already be
// migrated.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

// Collection returns a handle on the named collection.
func (s *SQLiteStore) Collection(name string) Collection {
	return &SQLiteCollection{db: s.DB, name: name}
}

// Disconnect closes the database.
func (s *SQLiteStore) Disconnect(_ context.Context) error {
	return s.DB.Close()
}

// SQLiteCollection implements Collection for one collection name.
type SQLiteCollection struct {
	db   *sql.DB
	name string
}

// Name returns the collection name.
func (c *SQLiteCollection) Name() string { return c.name }

// InsertMany inserts all documents inside one transaction.
func (c *SQLiteCollection) InsertMany(ctx context.Context, docs []Document) ([]ID, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert %s: %w", c.name, err)
	}

	ts := now().Format("2006-01-02T15:04:05.000Z")
	ids := make([]ID, 0, len(docs))
	for i, doc := range docs {
		id := assignID(doc)
		body, err := bson.MarshalExtJSON(toBSON(doc), false, false)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("encode %s document %d: %w", c.name, i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (collection, id, body, created_at) VALUES (?, ?, ?, ?)`,
			c.name, string(id), string(body), ts,
		); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert %s document %s: %w", c.name, id, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert %s: %w", c.name, err)
	}
	return ids, nil
}

// Create inserts a single document.
func (c *SQLiteCollection) Create(ctx context.Context, doc Document) (Document, error) {
	if _, err := c.InsertMany(ctx, []Document{doc}); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteMany removes matching documents. The empty filter clears the
// collection with a single statement.
func (c *SQLiteCollection) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	if len(filter) == 0 {
		res, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ?`, c.name)
		if err != nil {
			return 0, fmt.Errorf("delete %s: %w", c.name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		return n, nil
	}

	docs, err := c.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	var deleted int64
	for _, d := range docs {
		res, err := c.db.ExecContext(ctx,
			`DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, string(d.ID()))
		if err != nil {
			return deleted, fmt.Errorf("delete %s document %s: %w", c.name, d.ID(), err)
		}
		n, _ := res.RowsAffected()
		deleted += n
	}
	return deleted, nil
}

// Find scans the collection in insertion order and applies filter.
func (c *SQLiteCollection) Find(ctx context.Context, filter Filter) ([]Document, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE collection = ? ORDER BY seq ASC`, c.name)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.name, err)
	}
	defer func() { _ = rows.Close() }()

	var docs []Document
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", c.name, err)
		}
		var raw bson.M
		if err := bson.UnmarshalExtJSON([]byte(body), false, &raw); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c.name, err)
		}
		doc := mapFromBSON(raw)
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return docs, nil
}

// Count returns the number of matching documents.
func (c *SQLiteCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	if len(filter) == 0 {
		var n int64
		if err := c.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM documents WHERE collection = ?`, c.name,
		).Scan(&n); err != nil {
			return 0, fmt.Errorf("count %s: %w", c.name, err)
		}
		return n, nil
	}
	docs, err := c.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

// assignID sets a fresh "_id" on doc when it has none and returns the ID.
func assignID(doc Document) ID {
	if id := doc.ID(); id != "" {
		doc[IDKey] = id
		return id
	}
	id := NewID()
	doc[IDKey] = id
	return id
}
