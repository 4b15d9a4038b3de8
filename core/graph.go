// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Vertex/edge construction and read-only neighborhood queries.
// Determinism:
//   - Vertices() and Find() follow first-insertion order.
//   - Neighbors() and Arcs() follow edge insertion order.
// Concurrency:
//   - Mutators take mu for writing; queries take mu for reading.

package core

import "fmt"

// AddVertex inserts or overwrites the label for id.
//
// Behavior highlights:
//   - Overwriting keeps the vertex's original position in Vertices().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K, V, E]) AddVertex(id K, label V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.putLabel(id, label)
}

// AddEdge appends the arc from→to carrying payload to from's adjacency list.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve both endpoints against the label map.
//   - Stage 2: Auto-create missing endpoints with the zero label, or fail with
//     ErrVertexNotFound when auto-creation is disabled.
//   - Stage 3: Append the arc; parallel arcs are kept in insertion order.
//
// Errors:
//   - ErrVertexNotFound: an endpoint is unknown and auto-creation is disabled.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K, V, E]) AddEdge(from, to K, payload E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ensureEndpoints(from, to); err != nil {
		return err
	}
	g.appendArc(from, to, payload)

	return nil
}

// AddUndirectedEdge inserts the arcs a→b and b→a with the same payload.
// Both arcs are added under one lock acquisition, so readers never observe half an edge.
//
// Errors:
//   - ErrVertexNotFound: an endpoint is unknown and auto-creation is disabled.
func (g *Graph[K, V, E]) AddUndirectedEdge(a, b K, payload E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ensureEndpoints(a, b); err != nil {
		return err
	}
	g.appendArc(a, b, payload)
	g.appendArc(b, a, payload)

	return nil
}

// Neighbors returns the adjacency targets of id in insertion order.
// A vertex without outgoing arcs yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph[K, V, E]) Neighbors(id K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.adj[id]
	out := make([]K, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, a.To)
	}

	return out
}

// Arcs returns a copy of id's adjacency list including payloads.
func (g *Graph[K, V, E]) Arcs(id K) []Arc[K, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc[K, E], len(g.adj[id]))
	copy(out, g.adj[id])

	return out
}

// Edge returns the payload of the first arc from→to, scanning from's
// adjacency list linearly. ok is false when no such arc exists.
//
// Complexity:
//   - Time O(d), Space O(1).
func (g *Graph[K, V, E]) Edge(from, to K) (payload E, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.adj[from] {
		if a.To == to {
			return a.Payload, true
		}
	}

	return payload, false
}

// Label returns the label stored for id. ok is false for unknown vertices;
// an absent vertex is never an error.
func (g *Graph[K, V, E]) Label(id K) (label V, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	label, ok = g.labels[id]

	return label, ok
}

// HasVertex reports whether id has a label.
func (g *Graph[K, V, E]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.labels[id]

	return ok
}

// Vertices returns all labeled vertex IDs in first-insertion order.
func (g *Graph[K, V, E]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Find returns the first vertex, in first-insertion order, whose label satisfies pred.
//
// Determinism:
//   - Insertion order pins the answer when several vertices match.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[K, V, E]) Find(pred func(id K, label V) bool) (id K, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.order {
		if pred(v, g.labels[v]) {
			return v, true
		}
	}

	return id, false
}

// FindAll returns every vertex whose label satisfies pred, in first-insertion order.
func (g *Graph[K, V, E]) FindAll(pred func(id K, label V) bool) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []K
	for _, v := range g.order {
		if pred(v, g.labels[v]) {
			out = append(out, v)
		}
	}

	return out
}

// Order returns the number of labeled vertices.
func (g *Graph[K, V, E]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Size returns the number of directed arcs; an undirected edge counts twice.
func (g *Graph[K, V, E]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

// putLabel stores label for id, recording first insertion. Caller holds mu.
func (g *Graph[K, V, E]) putLabel(id K, label V) {
	if _, exists := g.labels[id]; !exists {
		g.order = append(g.order, id)
	}
	g.labels[id] = label
}

// ensureEndpoints registers or validates both arc endpoints. Caller holds mu.
func (g *Graph[K, V, E]) ensureEndpoints(from, to K) error {
	var zero V
	for _, id := range [2]K{from, to} {
		if _, exists := g.labels[id]; exists {
			continue
		}
		if !g.autoCreate {
			return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
		}
		g.putLabel(id, zero)
	}

	return nil
}

// appendArc adds one directed arc. Caller holds mu.
func (g *Graph[K, V, E]) appendArc(from, to K, payload E) {
	g.adj[from] = append(g.adj[from], Arc[K, E]{To: to, Payload: payload})
	g.arcs++
}
