// Package frontier provides the open list used by uninformed search.
//
// A Frontier is a closed variant chosen at construction time:
//
//   - LIFO:    stack; Pop returns the most recently pushed item (DFS).
//   - FIFO:    queue; Pop returns the earliest pushed item (BFS).
//   - MinCost: binary min-heap keyed by cumulative cost (UCS).
//
// The cost passed to Push is ignored by LIFO and FIFO.
//
// Tie-breaking (MinCost):
//
//	Among items of equal cost the most recently pushed one is popped first.
//	Every push is stamped with a monotonically increasing sequence number
//	and the heap orders by (cost asc, seq desc), so the order is fully
//	reproducible for a fixed push sequence.
//
// Complexity:
//
//   - LIFO/FIFO: Push and Pop O(1) amortized.
//   - MinCost:   Push and Pop O(log n).
//
// A Frontier is not safe for concurrent use; one search run owns it.
package frontier
