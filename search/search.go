// Package search implements DFS, BFS and UCS over a core.Graph labeled with
// State values and carrying int64 edge costs.
//
// One loop serves all three algorithms; they differ only in the frontier
// variant and in the pruning rule:
//
//   - DFS/BFS: a vertex is marked visited when pushed and never pushed again.
//   - UCS: a vertex is finalized when popped (after the goal test); only
//     finalized vertices are pruned, so a cheaper path discovered before
//     finalization re-opens the vertex under a new (cost, id) key. Stale
//     frontier entries are discarded lazily on pop.
//
// Siblings are deduplicated (first arc wins) and sorted ascending by ID.
// BFS and UCS push them ascending; DFS pushes them descending so the smallest
// ID is on top of the stack and siblings are explored in ascending order.
package search

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// runner holds the mutable state of a single search run.
type runner[K cmp.Ordered] struct {
	g        *core.Graph[K, State, int64]
	algo     Algorithm
	opts     Options[K]
	open     *frontier.Frontier[Node[K]]
	explored map[K]struct{} // visited (DFS/BFS) or finalized (UCS)
	tree     *Tree[K]
	expanded int
}

// Run searches g from its Start vertex for a Goal vertex using algo.
//
// Returns ErrGraphNil, ErrUnknownAlgorithm or ErrOptionViolation for invalid
// input, ErrNoStartNode (or ErrMultipleStart under WithStrictStart) when the
// start cannot be resolved, ErrNoPathFound when the frontier is exhausted,
// ErrExpansionLimit when WithMaxExpansions stops the run, or the context error.
func Run[K cmp.Ordered](g *core.Graph[K, State, int64], algo Algorithm, opts ...Option[K]) (*Solution[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	kind, err := algo.frontierKind()
	if err != nil {
		return nil, err
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := resolveStart(g, o.StrictStart)
	if err != nil {
		o.OnFinish(NoStart)
		return nil, err
	}
	o.OnStart(algo, start)

	r := &runner[K]{
		g:        g,
		algo:     algo,
		opts:     o,
		open:     frontier.New[Node[K]](kind),
		explored: make(map[K]struct{}, g.Order()),
		tree:     newTree[K](g.Order()),
	}

	return r.loop(start)
}

// resolveStart finds the start vertex, first-found-wins unless strict.
func resolveStart[K cmp.Ordered](g *core.Graph[K, State, int64], strict bool) (K, error) {
	if strict {
		starts := g.FindAll(func(_ K, s State) bool { return s == Start })
		switch len(starts) {
		case 0:
			var zero K
			return zero, ErrNoStartNode
		case 1:
			return starts[0], nil
		default:
			return starts[0], fmt.Errorf("%w: %v", ErrMultipleStart, starts)
		}
	}
	start, ok := FindStart(g)
	if !ok {
		return start, ErrNoStartNode
	}

	return start, nil
}

// loop drives the frontier until a goal is popped or it is exhausted.
func (r *runner[K]) loop(start K) (*Solution[K], error) {
	r.push(Node[K]{ID: start})

	for {
		if err := r.opts.Ctx.Err(); err != nil {
			r.opts.OnFinish(Aborted)
			return nil, err
		}

		n, ok := r.open.Pop()
		if !ok {
			break
		}

		// lazy deletion of entries superseded by a cheaper finalized path
		if r.algo == UCS && r.isExplored(n.ID) {
			r.opts.OnDiscard(n)
			continue
		}
		r.opts.OnDequeue(n)

		if r.isGoal(n.ID) {
			sol := r.solution(n)
			r.opts.OnFinish(GoalFound)
			return sol, nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			r.opts.OnFinish(Aborted)
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}

		if r.algo == UCS {
			r.explored[n.ID] = struct{}{}
		}

		children := r.expand(n)
		r.expanded++
		r.opts.OnExpand(n, ids(children))

		// dead end: nothing new to push, the frontier backtracks on its own
		if len(children) == 0 {
			continue
		}
		if r.algo == DFS {
			for i := len(children) - 1; i >= 0; i-- {
				r.pushChild(children[i], n)
			}
			continue
		}
		for _, c := range children {
			r.pushChild(c, n)
		}
	}

	r.opts.OnFinish(Exhausted)
	return nil, ErrNoPathFound
}

// expand returns n's unexplored neighbors with their cumulative costs,
// deduplicated and sorted ascending by ID.
func (r *runner[K]) expand(n Node[K]) []Node[K] {
	nbrs := r.g.Neighbors(n.ID)
	children := make([]Node[K], 0, len(nbrs))
	seen := make(map[K]struct{}, len(nbrs))
	for _, id := range nbrs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if r.isExplored(id) {
			continue
		}
		w, _ := r.g.Edge(n.ID, id)
		children = append(children, Node[K]{Cost: addCost(n.Cost, w), ID: id})
	}
	slices.SortFunc(children, func(a, b Node[K]) int { return cmp.Compare(a.ID, b.ID) })

	return children
}

// pushChild records parent as the discoverer of child and pushes child.
func (r *runner[K]) pushChild(child, parent Node[K]) {
	r.tree.set(child, parent)
	r.push(child)
}

// push adds n to the frontier; DFS and BFS mark it visited immediately.
func (r *runner[K]) push(n Node[K]) {
	if r.algo != UCS {
		r.explored[n.ID] = struct{}{}
	}
	r.open.Push(n, n.Cost)
	r.opts.OnEnqueue(n)
}

func (r *runner[K]) isGoal(id K) bool {
	if r.opts.Goal != nil {
		return r.opts.Goal(id)
	}

	return IsGoal(r.g, id)
}

func (r *runner[K]) isExplored(id K) bool {
	_, ok := r.explored[id]
	return ok
}

// solution assembles the result for goal node n.
func (r *runner[K]) solution(n Node[K]) *Solution[K] {
	steps := r.tree.PathTo(n)

	return &Solution[K]{
		Algorithm: r.algo,
		Goal:      n,
		Steps:     steps,
		Path:      ids(steps),
		Cost:      n.Cost,
		Expanded:  r.expanded,
		Tree:      r.tree,
	}
}

func ids[K cmp.Ordered](nodes []Node[K]) []K {
	out := make([]K, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}

// addCost adds an edge cost to a cumulative cost, saturating at math.MaxInt64
// so huge weights cannot wrap negative and reorder the frontier.
func addCost(total, w int64) int64 {
	if w > 0 && total > math.MaxInt64-w {
		return math.MaxInt64
	}

	return total + w
}
