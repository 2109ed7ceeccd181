package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/johnwards/learnseed/internal/store"
)

// Seeder populates exactly one collection.
type Seeder interface {
	// Name identifies the unit on the command line and in Requires lists.
	Name() string
	// Label is the operator-facing title, usually emoji prefixed.
	Label() string
	// Collection is the one collection the unit owns and clears.
	Collection() string
	// Requires lists the units whose records Run reads.
	Requires() []string
	// Run clears the unit's collection, inserts its dataset and returns the
	// documents the store acknowledged.
	Run(ctx context.Context, env *Env) ([]store.Document, error)
}

// Warner receives data-item problems found while building records. Skip
// drops the whole item and is counted; Warn drops only one reference.
type Warner interface {
	Skip(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Env is what a unit sees while it runs.
type Env struct {
	Store  store.Store
	Logger *slog.Logger

	unit     Seeder
	registry *Registry
	outputs  map[string][]store.Document
	skipped  int
}

// Collection returns the collection owned by the running unit.
func (e *Env) Collection() store.Collection {
	return e.Store.Collection(e.unit.Collection())
}

// Records returns the records of prerequisite unit name. Output produced
// earlier in this run is returned as is; otherwise the prerequisite's
// collection is read from the store.
func (e *Env) Records(ctx context.Context, name string) ([]store.Document, error) {
	if !slices.Contains(e.unit.Requires(), name) {
		return nil, fmt.Errorf("%w: %q reads %q", ErrUndeclaredDependency, e.unit.Name(), name)
	}
	if docs, ok := e.outputs[name]; ok {
		return docs, nil
	}

	dep, ok := e.registry.Unit(name)
	if !ok {
		return nil, unknownDependency(e.unit.Name(), name)
	}
	docs, err := e.Store.Collection(dep.Collection()).Find(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("load %s records: %w", name, err)
	}
	e.outputs[name] = docs
	return docs, nil
}

// Skip logs a warning for a dropped data item and counts it.
func (e *Env) Skip(msg string, args ...any) {
	e.skipped++
	e.Logger.Warn(msg, append([]any{"unit", e.unit.Name()}, args...)...)
}

// Warn logs a warning attributed to the running unit.
func (e *Env) Warn(msg string, args ...any) {
	e.Logger.Warn(msg, append([]any{"unit", e.unit.Name()}, args...)...)
}

// Skipped returns how many items the running unit has dropped so far.
func (e *Env) Skipped() int { return e.skipped }
