// Package core provides a small, thread-safe, generic labeled directed graph
// used as the state space for uninformed search.
//
// The Graph G = (V,E) stores:
//
//   - a label per vertex (Graph[K, V, E]: K is the vertex ID, V the label),
//   - an ordered list of outgoing arcs per vertex, each carrying an E payload.
//
// Undirected edges are two arcs inserted atomically by AddUndirectedEdge.
// Adjacency order is insertion order; parallel arcs are kept.
//
// Configuration Options (GraphOption):
//
//	– WithAutoCreate(enabled bool)
//	    true (default): AddEdge registers unknown endpoints with the zero label.
//	    false: AddEdge(unknown, …) → ErrVertexNotFound and nothing is mutated.
//
// Core Methods:
//
//	// Construction
//	AddVertex(id K, label V)                // O(1), insert or overwrite
//	AddEdge(from, to K, e E) error          // O(1)
//	AddUndirectedEdge(a, b K, e E) error    // O(1), both arcs or none
//
//	// Query
//	Neighbors(id K) []K                     // O(d), empty slice if no arcs
//	Arcs(id K) []Arc[K, E]                  // O(d), copy with payloads
//	Edge(from, to K) (E, bool)              // O(d), first match
//	Label(id K) (V, bool)                   // O(1)
//	Vertices() []K                          // O(V), first-insertion order
//	Find(pred) (K, bool)                    // O(V), first match in insertion order
//
// Determinism:
//
//	No method depends on Go map iteration order. Vertices, Find and FindAll
//	walk the first-insertion order; Neighbors and Arcs walk arc insertion order.
//
// Concurrency:
//
//	A single sync.RWMutex guards labels and adjacency. Building a graph from
//	several goroutines is safe; searches only take read locks.
package core
