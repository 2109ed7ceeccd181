package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/store"
)

// slugIndex maps slugs of already-seeded records to their IDs.
type slugIndex map[string]store.ID

// refs holds one slugIndex per prerequisite unit.
type refs map[string]slugIndex

func indexBySlug(docs []store.Document) slugIndex {
	idx := make(slugIndex, len(docs))
	for _, d := range docs {
		if slug := d.String("slug"); slug != "" {
			idx[slug] = d.ID()
		}
	}
	return idx
}

// resolveAll returns the IDs of slugs, warning about and dropping the ones
// that are missing.
func (ix slugIndex) resolveAll(slugs []string, w pipeline.Warner, what, owner string) []store.ID {
	ids := make([]store.ID, 0, len(slugs))
	for _, s := range slugs {
		id, ok := ix[s]
		if !ok {
			w.Warn(what+" not found, reference dropped", "item", owner, what, s)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// unit is a Seeder that loads a YAML dataset of T, turns it into documents
// with build, and replaces its collection with them.
type unit[T any] struct {
	name       string
	label      string
	collection string
	file       string
	requires   []string
	fsys       fs.FS
	build      func(items []T, r refs, w pipeline.Warner) []store.Document
}

func (u *unit[T]) Name() string       { return u.name }
func (u *unit[T]) Label() string      { return u.label }
func (u *unit[T]) Collection() string { return u.collection }
func (u *unit[T]) Requires() []string { return u.requires }

func (u *unit[T]) Run(ctx context.Context, env *pipeline.Env) ([]store.Document, error) {
	items, err := load[T](u.fsys, u.file)
	if err != nil {
		return nil, err
	}

	r := make(refs, len(u.requires))
	for _, dep := range u.requires {
		docs, err := env.Records(ctx, dep)
		if err != nil {
			return nil, err
		}
		r[dep] = indexBySlug(docs)
	}

	docs := u.build(items, r, env)
	stamp(docs, time.Now().UTC())

	c := env.Collection()
	if _, err := c.DeleteMany(ctx, store.Filter{}); err != nil {
		return nil, fmt.Errorf("clear %s: %w", u.collection, err)
	}
	ids, err := c.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", u.collection, err)
	}
	return docs[:len(ids)], nil
}

// load decodes the YAML list in file. Unknown keys are an error so a typo
// in a dataset fails the unit instead of silently dropping a field.
func load[T any](fsys fs.FS, file string) ([]T, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", file, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var items []T
	if err := dec.Decode(&items); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset %s: %w", file, err)
	}
	return items, nil
}

// stamp sets Mongoose-style timestamps on documents that lack them.
func stamp(docs []store.Document, ts time.Time) {
	ts = ts.Truncate(time.Millisecond)
	for _, d := range docs {
		if _, ok := d["createdAt"]; !ok {
			d["createdAt"] = ts
		}
		if _, ok := d["updatedAt"]; !ok {
			d["updatedAt"] = ts
		}
	}
}
