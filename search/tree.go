package search

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrInvalidSolution is returned by Verify when a solution does not match its graph.
var ErrInvalidSolution = errors.New("search: invalid solution")

// Tree is the parent-pointer search tree of one run.
// Every pushed non-start node has exactly one entry; the start node has none,
// which terminates the back-walk. Entries are kept in first-insertion order.
type Tree[K cmp.Ordered] struct {
	parent map[Node[K]]Node[K]
	order  []Node[K]
}

func newTree[K cmp.Ordered](capacity int) *Tree[K] {
	return &Tree[K]{
		parent: make(map[Node[K]]Node[K], capacity),
		order:  make([]Node[K], 0, capacity),
	}
}

// set records parent as the discoverer of child. Re-discovering the same key
// overwrites its parent but keeps its original position.
func (t *Tree[K]) set(child, parent Node[K]) {
	if _, exists := t.parent[child]; !exists {
		t.order = append(t.order, child)
	}
	t.parent[child] = parent
}

// Parent returns the node that discovered n. ok is false for the start node
// and for keys never pushed.
func (t *Tree[K]) Parent(n Node[K]) (Node[K], bool) {
	p, ok := t.parent[n]
	return p, ok
}

// Len returns the number of child→parent entries.
func (t *Tree[K]) Len() int { return len(t.order) }

// Each calls fn for every entry in first-insertion order until fn returns false.
func (t *Tree[K]) Each(fn func(child, parent Node[K]) bool) {
	for _, c := range t.order {
		if !fn(c, t.parent[c]) {
			return
		}
	}
}

// Map returns a copy of the parent map.
func (t *Tree[K]) Map() map[Node[K]]Node[K] {
	out := make(map[Node[K]]Node[K], len(t.parent))
	for c, p := range t.parent {
		out[c] = p
	}

	return out
}

// PathTo walks parent pointers from n back to the root and returns the nodes
// in root→n order. A node without a parent yields the single-element path [n].
//
// Complexity:
//   - Time O(depth), Space O(depth).
func (t *Tree[K]) PathTo(n Node[K]) []Node[K] {
	path := []Node[K]{n}
	// a well-formed tree cannot be deeper than its entry count
	for cur := n; len(path) <= len(t.parent); {
		prev, ok := t.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Solution is the outcome of a successful run.
type Solution[K cmp.Ordered] struct {
	// Algorithm that produced the solution.
	Algorithm Algorithm

	// Goal is the popped goal node (its search-tree key).
	Goal Node[K]

	// Steps are the search-tree keys from start to goal.
	Steps []Node[K]

	// Path is Steps projected onto vertex IDs.
	Path []K

	// Cost is the total edge cost of Path.
	Cost int64

	// Expanded counts the nodes expanded before the goal was popped.
	Expanded int

	// Tree is the full search tree, for diagram rendering.
	Tree *Tree[K]
}

// String renders the path as "A -> B -> C".
func (s *Solution[K]) String() string {
	parts := make([]string, len(s.Path))
	for i, id := range s.Path {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, " -> ")
}

// Verify checks sol against g: the path starts at a Start vertex, ends at
// sol.Goal, matches sol.Steps, every consecutive pair is an arc of g, and the
// first-match arc costs sum to sol.Cost. The goal is taken from sol rather than
// from labels, so solutions found under WithGoal verify too.
func Verify[K cmp.Ordered](g *core.Graph[K, State, int64], sol *Solution[K]) error {
	if g == nil {
		return ErrGraphNil
	}
	if sol == nil || len(sol.Path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidSolution)
	}
	if s, _ := g.Label(sol.Path[0]); s != Start {
		return fmt.Errorf("%w: path starts at non-start vertex %v", ErrInvalidSolution, sol.Path[0])
	}
	last := sol.Path[len(sol.Path)-1]
	if last != sol.Goal.ID {
		return fmt.Errorf("%w: path ends at %v, goal is %v", ErrInvalidSolution, last, sol.Goal.ID)
	}
	if len(sol.Steps) != len(sol.Path) {
		return fmt.Errorf("%w: %d steps for %d path vertices", ErrInvalidSolution, len(sol.Steps), len(sol.Path))
	}
	for i, st := range sol.Steps {
		if st.ID != sol.Path[i] {
			return fmt.Errorf("%w: step %d is %v, path has %v", ErrInvalidSolution, i, st.ID, sol.Path[i])
		}
	}

	var total int64
	for i := 1; i < len(sol.Path); i++ {
		w, ok := g.Edge(sol.Path[i-1], sol.Path[i])
		if !ok {
			return fmt.Errorf("%w: no edge %v→%v", ErrInvalidSolution, sol.Path[i-1], sol.Path[i])
		}
		total = addCost(total, w)
	}
	if total != sol.Cost || sol.Goal.Cost != sol.Cost {
		return fmt.Errorf("%w: path costs %d, solution reports %d", ErrInvalidSolution, total, sol.Cost)
	}

	return nil
}
