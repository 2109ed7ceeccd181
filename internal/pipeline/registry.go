package pipeline

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// Registry is an immutable, validated set of seed units. Edges point from a
// prerequisite to the unit that requires it.
type Registry struct {
	units map[string]Seeder
	names []string // registration order
	order []string // execution order
	index map[string]int
	graph graph.Graph[string, string]
}

// NewRegistry builds and validates a Registry.
//
// Validation runs immediately and rejects:
//   - empty or duplicate unit names
//   - empty collection names, or two units owning the same collection
//   - requirements naming unknown units, or the unit itself
//   - any cycle (direct or indirect)
//
// Units are executed in topological order; ties keep registration order.
func NewRegistry(units ...Seeder) (*Registry, error) {
	if len(units) == 0 {
		return nil, invalidf("no units")
	}

	r := &Registry{
		units: make(map[string]Seeder, len(units)),
		index: make(map[string]int, len(units)),
		graph: graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
	}

	owners := make(map[string]string, len(units))
	for i, u := range units {
		name := u.Name()
		if name == "" {
			return nil, invalidf("unit %d has no name", i)
		}
		if _, exists := r.units[name]; exists {
			return nil, invalidf("duplicate unit name: %q", name)
		}
		coll := u.Collection()
		if coll == "" {
			return nil, invalidf("unit %q has no collection", name)
		}
		if other, taken := owners[coll]; taken {
			return nil, invalidf("collection %q owned by both %q and %q", coll, other, name)
		}
		owners[coll] = name

		if err := r.graph.AddVertex(name, graph.VertexAttribute("label", u.Label())); err != nil {
			return nil, fmt.Errorf("add unit %q: %w", name, err)
		}
		r.units[name] = u
		r.index[name] = i
		r.names = append(r.names, name)
	}

	for _, name := range r.names {
		for _, dep := range r.units[name].Requires() {
			if dep == name {
				return nil, invalidf("unit %q requires itself", name)
			}
			if _, ok := r.units[dep]; !ok {
				return nil, unknownDependency(name, dep)
			}
			err := r.graph.AddEdge(dep, name)
			switch {
			case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return nil, cycleError(r.cyclePath(dep, name))
			default:
				return nil, fmt.Errorf("add dependency %q -> %q: %w", dep, name, err)
			}
		}
	}

	order, err := r.topoOrder()
	if err != nil {
		return nil, fmt.Errorf("sort units: %w", err)
	}
	r.order = order

	return r, nil
}

// topoOrder runs Kahn's algorithm over the graph. Among ready units the one
// registered first is taken next, so the result is deterministic and keeps
// the hand-written order wherever dependencies allow it.
func (r *Registry) topoOrder() ([]string, error) {
	preds, err := r.graph.PredecessorMap()
	if err != nil {
		return nil, err
	}
	adj, err := r.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	indeg := make(map[string]int, len(preds))
	for v, in := range preds {
		indeg[v] = len(in)
	}

	var ready []string
	for _, name := range r.names {
		if indeg[name] == 0 {
			ready = append(ready, name)
		}
	}

	out := make([]string, 0, len(r.names))
	for len(ready) > 0 {
		next := 0
		for i := range ready {
			if r.index[ready[i]] < r.index[ready[next]] {
				next = i
			}
		}
		n := ready[next]
		ready = slices.Delete(ready, next, next+1)
		out = append(out, n)

		for m := range adj[n] {
			indeg[m]--
			if indeg[m] == 0 {
				ready = append(ready, m)
			}
		}
	}

	if len(out) != len(r.names) {
		return nil, cycleError(nil)
	}
	return out, nil
}

// cyclePath returns the witness for the cycle that edge dep -> name would
// close: dep -> name -> ... -> dep.
func (r *Registry) cyclePath(dep, name string) []string {
	back, err := graph.ShortestPath(r.graph, name, dep)
	if err != nil {
		return []string{dep, name, dep}
	}
	return append([]string{dep}, back...)
}

// Order returns unit names in execution order.
func (r *Registry) Order() []string {
	return slices.Clone(r.order)
}

// Names returns unit names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Unit returns the unit registered under name.
func (r *Registry) Unit(name string) (Seeder, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Dependents returns every unit that directly or transitively requires
// name, in execution order.
func (r *Registry) Dependents(name string) []string {
	if _, ok := r.units[name]; !ok {
		return nil
	}

	seen := make(map[string]bool)
	_ = graph.DFS(r.graph, name, func(v string) bool {
		if v != name {
			seen[v] = true
		}
		return false
	})

	var out []string
	for _, n := range r.order {
		if seen[n] {
			out = append(out, n)
		}
	}
	return out
}

// DOT writes the dependency graph in Graphviz DOT format.
func (r *Registry) DOT(w io.Writer) error {
	return draw.DOT(r.graph, w, draw.GraphAttribute("rankdir", "LR"))
}
