// Package search defines the vertex states, algorithm selector, options and
// sentinel errors for uninformed search over a core.Graph.
package search

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNoStartNode is returned when no vertex is labeled Start.
	ErrNoStartNode = errors.New("search: no start node found")

	// ErrMultipleStart is returned under WithStrictStart when more than one vertex is labeled Start.
	ErrMultipleStart = errors.New("search: more than one start node")

	// ErrNoPathFound is returned when the frontier is exhausted without reaching a goal.
	ErrNoPathFound = errors.New("search: no path found")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a run before it terminates.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownAlgorithm is returned for an Algorithm outside {DFS, BFS, UCS}.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownState is returned by ParseState for an unrecognized state name.
	ErrUnknownState = errors.New("search: unknown vertex state")
)

// ErrNoGoalFound is the same condition as ErrNoPathFound.
var ErrNoGoalFound = ErrNoPathFound

// State classifies a vertex for search. The zero value is Neutral, so
// vertices auto-created by core.Graph.AddEdge are neither start nor goal.
type State int

const (
	// Neutral marks an ordinary vertex.
	Neutral State = iota
	// Start marks the vertex a search begins from.
	Start
	// Goal marks a vertex that terminates the search when popped.
	Goal
)

var stateNames = [...]string{Neutral: "neutral", Start: "start", Goal: "goal"}

// String implements fmt.Stringer.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState converts "start", "neutral" or "goal" (case-insensitive) to a State.
// The empty string parses as Neutral.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "neutral":
		return Neutral, nil
	case "start":
		return Start, nil
	case "goal":
		return Goal, nil
	default:
		return Neutral, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// NewGraph returns an empty search graph: State labels and int64 edge costs.
func NewGraph[K cmp.Ordered](opts ...core.GraphOption) *core.Graph[K, State, int64] {
	return core.New[K, State, int64](opts...)
}

// FindStart returns the first Start vertex in insertion order.
func FindStart[K cmp.Ordered](g *core.Graph[K, State, int64]) (K, bool) {
	return g.Find(func(_ K, s State) bool { return s == Start })
}

// IsGoal reports whether id is labeled Goal. Unknown vertices are not goals.
func IsGoal[K cmp.Ordered](g *core.Graph[K, State, int64], id K) bool {
	s, ok := g.Label(id)

	return ok && s == Goal
}

// Algorithm selects the expansion order of a search run.
type Algorithm int

const (
	// DFS is depth-first search (stack frontier, visited-at-all pruning).
	DFS Algorithm = iota
	// BFS is breadth-first search (queue frontier, visited-at-all pruning).
	BFS
	// UCS is uniform-cost search (min-cost frontier, finalized-only pruning).
	UCS
)

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm { return []Algorithm{DFS, BFS, UCS} }

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	case UCS:
		return "UCS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts "dfs", "bfs" or "ucs" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "ucs":
		return UCS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// frontierKind maps the algorithm onto its frontier variant.
func (a Algorithm) frontierKind() (frontier.Kind, error) {
	switch a {
	case DFS:
		return frontier.LIFO, nil
	case BFS:
		return frontier.FIFO, nil
	case UCS:
		return frontier.MinCost, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// Node is a frontier item and search-tree key: a vertex reached at a cumulative cost.
//
// For UCS the same vertex may appear under several costs before it is finalized.
// DFS and BFS open each vertex at most once, so their keys are one per vertex.
// Cost saturates at math.MaxInt64; edge costs are expected to be non-negative.
type Node[K cmp.Ordered] struct {
	Cost int64
	ID   K
}

// String renders the node as "cost id".
func (n Node[K]) String() string { return fmt.Sprintf("%d %v", n.Cost, n.ID) }

// Outcome is the terminal state of a run.
type Outcome int

const (
	// GoalFound means a goal vertex was popped.
	GoalFound Outcome = iota
	// Exhausted means the frontier emptied without a goal.
	Exhausted
	// NoStart means no start vertex could be resolved.
	NoStart
	// Aborted means the run was stopped by its context or expansion limit.
	Aborted
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	case NoStart:
		return "no-start"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Option configures a search run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds parameters and callbacks to customize a search run.
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// OnStart is called once with the resolved start vertex.
	OnStart func(algo Algorithm, start K)

	// OnEnqueue is called for every node pushed onto the frontier.
	OnEnqueue func(n Node[K])

	// OnDequeue is called for every node popped and goal-tested.
	OnDequeue func(n Node[K])

	// OnDiscard is called when UCS pops a node whose vertex is already finalized.
	OnDiscard func(n Node[K])

	// OnExpand is called after expansion with the surviving children,
	// sorted ascending by ID. An empty slice means a dead end.
	OnExpand func(n Node[K], children []K)

	// OnFinish is called exactly once when the run terminates.
	OnFinish func(o Outcome)

	// MaxExpansions, if > 0, bounds the number of expanded nodes.
	// A value of 0 disables the limit.
	MaxExpansions int

	// StrictStart rejects graphs with more than one Start vertex.
	StrictStart bool

	// Goal, if non-nil, replaces the Goal-label test.
	Goal func(id K) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no expansion limit and first-found-wins start resolution.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx:       context.Background(),
		OnStart:   func(Algorithm, K) {},
		OnEnqueue: func(Node[K]) {},
		OnDequeue: func(Node[K]) {},
		OnDiscard: func(Node[K]) {},
		OnExpand:  func(Node[K], []K) {},
		OnFinish:  func(Outcome) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStart registers a callback run once the start vertex is resolved.
func WithOnStart[K cmp.Ordered](fn func(algo Algorithm, start K)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnStart = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every frontier push.
func WithOnEnqueue[K cmp.Ordered](fn func(n Node[K])) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run on every live frontier pop.
func WithOnDequeue[K cmp.Ordered](fn func(n Node[K])) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnDiscard registers a callback run when UCS drops a stale frontier entry.
func WithOnDiscard[K cmp.Ordered](fn func(n Node[K])) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithOnExpand registers a callback run after each expansion.
func WithOnExpand[K cmp.Ordered](fn func(n Node[K], children []K)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnFinish registers a callback run once with the terminal Outcome.
func WithOnFinish[K cmp.Ordered](fn func(o Outcome)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: stop with ErrExpansionLimit once n nodes were expanded
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[K cmp.Ordered](n int) Option[K] {
	return func(o *Options[K]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithGoal replaces the Goal-label test with pred. The test still runs when a
// node is popped, so a start vertex satisfying pred yields the one-vertex path.
func WithGoal[K cmp.Ordered](pred func(id K) bool) Option[K] {
	return func(o *Options[K]) {
		if pred != nil {
			o.Goal = pred
		}
	}
}

// WithStrictStart makes Run fail with ErrMultipleStart when several vertices are labeled Start.
func WithStrictStart[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) { o.StrictStart = true }
}
