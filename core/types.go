// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Arc, GraphOption, sentinel errors and the New constructor.
// Policy:
//   - Vertex labels and adjacency live in separate maps guarded by one RWMutex.
//   - Insertion order of vertices is recorded so enumeration is reproducible.

package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an edge endpoint has no label and auto-creation is disabled.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Arc is one outgoing adjacency entry: the target vertex and the edge payload.
type Arc[K cmp.Ordered, E any] struct {
	// To is the target vertex ID.
	To K

	// Payload is the edge data (a cost for search graphs).
	Payload E
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	autoCreate bool
}

// WithAutoCreate controls whether AddEdge registers unknown endpoints with the
// zero label (true, the default) or rejects them with ErrVertexNotFound (false).
func WithAutoCreate(enabled bool) GraphOption {
	return func(o *graphOptions) { o.autoCreate = enabled }
}

// Graph is a labeled directed graph.
//
// K identifies vertices, V is the per-vertex label and E the per-edge payload.
// Adjacency entries may reference IDs that have no label; such vertices are
// reported as absent by Label but still expand through Neighbors.
// mu protects every field below it.
type Graph[K cmp.Ordered, V any, E any] struct {
	mu sync.RWMutex

	autoCreate bool

	labels map[K]V           // vertex ID → label
	order  []K               // vertex IDs in first-insertion order
	adj    map[K][]Arc[K, E] // vertex ID → outgoing arcs in insertion order
	arcs   int               // number of directed arcs
}

// New creates an empty Graph. By default unknown edge endpoints are auto-created.
// Complexity: O(1)
func New[K cmp.Ordered, V any, E any](opts ...GraphOption) *Graph[K, V, E] {
	o := graphOptions{autoCreate: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K, V, E]{
		autoCreate: o.autoCreate,
		labels:     make(map[K]V),
		adj:        make(map[K][]Arc[K, E]),
	}
}
