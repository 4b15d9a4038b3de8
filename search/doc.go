// Package search provides uninformed graph search (depth-first DFS,
// breadth-first BFS and uniform-cost UCS) over a core.Graph whose
// vertices carry a State (Start, Neutral, Goal) and whose arcs carry int64 costs.
//
// What
//
//   - Resolve the Start vertex (first in insertion order, or exactly one
//     under WithStrictStart).
//   - Pop, goal-test, expand, prune, push until a Goal is popped or the
//     frontier is exhausted.
//   - Return a Solution with the start→goal path, its cost, the number of
//     expansions and the full parent-pointer Tree.
//
// Expansion order
//
//	DFS  stack (frontier.LIFO)    siblings explored in ascending ID order
//	BFS  queue (frontier.FIFO)    siblings explored in ascending ID order
//	UCS  heap  (frontier.MinCost) cheapest first; equal costs pop newest first
//
// Pruning
//
//	DFS/BFS mark a vertex visited when it is pushed and never push it again.
//	UCS finalizes a vertex when it is popped (after the goal test) and only
//	prunes finalized vertices, so a vertex on the frontier may be pushed again
//	with a cheaper cost. Stale entries are dropped when popped (OnDiscard).
//
// Guarantees
//
//   - DFS is not cost-optimal.
//   - BFS is optimal in hop count, not in weighted cost.
//   - UCS returns a minimum-cost path when all costs are non-negative.
//   - Runs are deterministic for a fixed graph.
//
// Usage
//
//	sol, err := search.Run(g, search.UCS)
//	switch {
//	case errors.Is(err, search.ErrNoStartNode):
//	case errors.Is(err, search.ErrNoPathFound):
//	case err == nil:
//	    fmt.Println(sol) // A -> F -> G -> E
//	}
//
// Options
//
//   - WithContext(ctx):          cancellation, checked once per pop.
//   - WithMaxExpansions(n):      stop with ErrExpansionLimit after n expansions (>0).
//   - WithStrictStart():         reject graphs with several Start vertices.
//   - WithGoal(pred):            replace the Goal-label test.
//   - WithOnStart, WithOnEnqueue, WithOnDequeue, WithOnDiscard,
//     WithOnExpand, WithOnFinish: trace hooks (see package tracelog).
//
// Errors
//
//   - ErrGraphNil, ErrUnknownAlgorithm, ErrOptionViolation for invalid input.
//   - ErrNoStartNode, ErrMultipleStart when the start cannot be resolved.
//   - ErrNoPathFound (alias ErrNoGoalFound) when the frontier is exhausted.
//   - ErrExpansionLimit or the context error when a run is aborted.
//
// Complexity (V = |vertices|, A = |arcs|)
//
//   - DFS/BFS: Time O(V + A·d) with d the max out-degree (first-match cost lookup), Memory O(V).
//   - UCS:     Time O(A·log A + A·d), Memory O(A) (lazy decrease-key).
package search
