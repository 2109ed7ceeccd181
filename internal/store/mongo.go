package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoStore wraps a connected client and the database to seed.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{Client: client, Database: db}
}

// Collection returns a handle on the named collection.
func (s *MongoStore) Collection(name string) Collection {
	return &MongoCollection{coll: s.Database.Collection(name)}
}

// Disconnect closes the client's connection pool.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// MongoCollection implements Collection on a *mongo.Collection.
type MongoCollection struct {
	coll *mongo.Collection
}

// Name returns the collection name.
func (c *MongoCollection) Name() string { return c.coll.Name() }

// InsertMany performs an ordered bulk insert. IDs are assigned client side
// so the returned documents can be used as lookup sources immediately.
func (c *MongoCollection) InsertMany(ctx context.Context, docs []Document) ([]ID, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	batch := make([]any, len(docs))
	for i, doc := range docs {
		assignID(doc)
		batch[i] = toBSON(doc)
	}

	res, err := c.coll.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", c.coll.Name(), err)
	}

	ids := make([]ID, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		id, ok := AsID(raw)
		if !ok {
			return nil, fmt.Errorf("insert %s: unexpected id type %T", c.coll.Name(), raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Create inserts a single document.
func (c *MongoCollection) Create(ctx context.Context, doc Document) (Document, error) {
	assignID(doc)
	if _, err := c.coll.InsertOne(ctx, toBSON(doc)); err != nil {
		return nil, fmt.Errorf("create %s: %w", c.coll.Name(), err)
	}
	return doc, nil
}

// DeleteMany removes matching documents.
func (c *MongoCollection) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, mongoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

// Find returns matching documents in natural order.
func (c *MongoCollection) Find(ctx context.Context, filter Filter) ([]Document, error) {
	cur, err := c.coll.Find(ctx, mongoFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, mapFromBSON(m))
	}
	return docs, nil
}

// Count returns the number of matching documents.
func (c *MongoCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, mongoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}

func mongoFilter(f Filter) bson.M {
	if len(f) == 0 {
		return bson.M{}
	}
	return mapToBSON(f)
}
