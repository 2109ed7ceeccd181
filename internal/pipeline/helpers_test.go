package pipeline_test

import (
	"context"

	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// fakeUnit clears its collection and inserts a copy of docs, unless run is
// set.
type fakeUnit struct {
	name     string
	coll     string
	requires []string
	docs     []store.Document
	run      func(ctx context.Context, env *pipeline.Env) ([]store.Document, error)
	calls    int
}

func unit(name string, requires ...string) *fakeUnit {
	return &fakeUnit{name: name, coll: name, requires: requires}
}

func (u *fakeUnit) Name() string       { return u.name }
func (u *fakeUnit) Label() string      { return "🧪 " + u.name }
func (u *fakeUnit) Collection() string { return u.coll }
func (u *fakeUnit) Requires() []string { return u.requires }

func (u *fakeUnit) Run(ctx context.Context, env *pipeline.Env) ([]store.Document, error) {
	u.calls++
	if u.run != nil {
		return u.run(ctx, env)
	}
	c := env.Collection()
	if _, err := c.DeleteMany(ctx, store.Filter{}); err != nil {
		return nil, err
	}
	docs := make([]store.Document, len(u.docs))
	for i, d := range u.docs {
		docs[i] = store.Document{}
		for k, v := range d {
			docs[i][k] = v
		}
	}
	ids, err := c.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	return docs[:len(ids)], nil
}

func withDocs(u *fakeUnit, slugs ...string) *fakeUnit {
	for _, s := range slugs {
		u.docs = append(u.docs, store.Document{"slug": s})
	}
	return u
}

// trackingStore counts Disconnect calls and leaves the test database open
// so collections can be inspected afterwards.
type trackingStore struct {
	store.Store
	disconnects int
}

func (s *trackingStore) Disconnect(context.Context) error {
	s.disconnects++
	return nil
}

func openerFor(s *trackingStore, opened *int) pipeline.Opener {
	return func(context.Context) (store.Store, error) {
		*opened++
		return s, nil
	}
}
