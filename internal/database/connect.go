package database

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/johnwards/learnseed/internal/store"
)

// DefaultDatabase is used when a MongoDB URI names no database.
const DefaultDatabase = "elearning"

const sqliteScheme = "sqlite:"

// Connect opens the document store addressed by uri. "mongodb://" and
// "mongodb+srv://" URIs connect to MongoDB; "sqlite:<path>" opens (and
// migrates) a local SQLite file, "sqlite::memory:" an in-memory database.
func Connect(ctx context.Context, uri string) (store.Store, error) {
	switch {
	case strings.HasPrefix(uri, sqliteScheme):
		return connectSQLite(ctx, strings.TrimPrefix(uri, sqliteScheme))
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		client, db, err := ConnectMongo(ctx, uri)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, db), nil
	default:
		return nil, fmt.Errorf("unsupported database uri %q", redact(uri))
	}
}

func connectSQLite(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite uri has no path")
	}
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store.NewSQLiteStore(db), nil
}

// ConnectMongo connects to MongoDB and verifies the primary is reachable.
// The database is the one named in the URI path, or DefaultDatabase.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	name, err := MongoDatabaseName(uri)
	if err != nil {
		return nil, nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb %s: %w", redact(uri), err)
	}

	return client, client.Database(name), nil
}

// MongoDatabaseName returns the database encoded in a MongoDB URI.
func MongoDatabaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parse mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

// redact strips credentials from a connection string for log output.
func redact(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return uri
	}
	if slash := strings.Index(rest, "/"); slash >= 0 && slash < at {
		return uri
	}
	return scheme + "://***@" + rest[at+1:]
}
