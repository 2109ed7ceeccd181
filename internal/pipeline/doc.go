// Package pipeline runs seed units against a document store in dependency
// order.
//
// A unit declares the units whose output it reads. NewRegistry turns those
// declarations into a graph, rejects unknown names, shared collections and
// cycles, and computes a stable topological order once. The Orchestrator
// then executes every unit (RunAll) or exactly one (RunOne) sequentially on
// a single store connection, stops at the first failure, and returns a
// Summary describing what ran. Already committed units are never rolled
// back; each unit clears its own collection before inserting, which makes a
// full re-run repair a partial one.
package pipeline
