package search_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/fixture"
	"github.com/katalvlaran/lvsearch/search"
)

func TestRun_Errors(t *testing.T) {
	_, err := search.Run[string](nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrGraphNil)

	g := fixture.RunningExample()
	_, err = search.Run(g, search.Algorithm(7))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Run(g, search.UCS, search.WithMaxExpansions[string](-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_NoStart(t *testing.T) {
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := search.NewGraph[string]()
			sol, err := search.Run(g, algo)
			assert.Nil(t, sol)
			assert.ErrorIs(t, err, search.ErrNoStartNode)

			// goals and edges without a start are still NoStart
			g.AddVertex("E", search.Goal)
			require.NoError(t, g.AddUndirectedEdge("A", "E", 1))
			_, err = search.Run(g, algo)
			assert.ErrorIs(t, err, search.ErrNoStartNode)
		})
	}
}

func TestRun_OnlyStart(t *testing.T) {
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := search.NewGraph[string]()
			g.AddVertex("A", search.Start)

			sol, err := search.Run(g, algo)
			assert.Nil(t, sol)
			assert.ErrorIs(t, err, search.ErrNoPathFound)
			assert.ErrorIs(t, err, search.ErrNoGoalFound)
			assert.NotErrorIs(t, err, search.ErrNoStartNode)
		})
	}
}

func TestRun_UnreachableGoal(t *testing.T) {
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := search.NewGraph[string]()
			g.AddVertex("S", search.Start)
			g.AddVertex("T", search.Goal)
			require.NoError(t, g.AddUndirectedEdge("S", "X", 1))
			require.NoError(t, g.AddUndirectedEdge("X", "Y", 1))
			require.NoError(t, g.AddEdge("T", "S", 1)) // one-way, wrong direction

			_, err := search.Run(g, algo)
			assert.ErrorIs(t, err, search.ErrNoPathFound)
		})
	}
}

func TestRun_RunningExample(t *testing.T) {
	tests := []struct {
		algo     search.Algorithm
		path     []string
		cost     int64
		expanded int
	}{
		{search.DFS, []string{"A", "B", "D", "G", "E"}, 15, 5},
		{search.BFS, []string{"A", "F", "G", "E"}, 14, 6},
		{search.UCS, []string{"A", "F", "G", "E"}, 14, 6},
	}
	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			g := fixture.RunningExample()
			sol, err := search.Run(g, tt.algo)
			require.NoError(t, err)

			assert.Equal(t, tt.algo, sol.Algorithm)
			assert.Equal(t, tt.path, sol.Path)
			assert.Equal(t, tt.cost, sol.Cost)
			assert.Equal(t, tt.expanded, sol.Expanded)
			assert.Equal(t, search.Node[string]{Cost: tt.cost, ID: "E"}, sol.Goal)
			require.NoError(t, search.Verify(g, sol))
		})
	}
}

func TestRun_UCSIsCheapest(t *testing.T) {
	g := fixture.RunningExample()

	ucs, err := search.Run(g, search.UCS)
	require.NoError(t, err)
	dfs, err := search.Run(g, search.DFS)
	require.NoError(t, err)

	assert.Equal(t, "A -> F -> G -> E", ucs.String())
	assert.Equal(t, "A -> B -> D -> G -> E", dfs.String())
	assert.Less(t, ucs.Cost, dfs.Cost, "DFS is not cost-optimal on the running example")
}

func TestRun_UCSReopensCheaperPath(t *testing.T) {
	// S→G directly costs 10; S→A→B→G costs 3. BFS takes the hop-short route.
	g := search.NewGraph[string]()
	g.AddVertex("S", search.Start)
	g.AddVertex("G", search.Goal)
	require.NoError(t, g.AddEdge("S", "G", 10))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "G", 1))

	ucs, err := search.Run(g, search.UCS)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "G"}, ucs.Path)
	assert.Equal(t, int64(3), ucs.Cost)

	// both keys for G exist in the UCS tree
	_, ok := ucs.Tree.Parent(search.Node[string]{Cost: 10, ID: "G"})
	assert.True(t, ok)
	p, ok := ucs.Tree.Parent(search.Node[string]{Cost: 3, ID: "G"})
	require.True(t, ok)
	assert.Equal(t, search.Node[string]{Cost: 2, ID: "B"}, p)

	bfs, err := search.Run(g, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "G"}, bfs.Path)
	assert.Equal(t, int64(10), bfs.Cost)
}

func TestRun_UCSDiscardsStaleEntries(t *testing.T) {
	// D is reached at 9 via S→D and at 2 via S→A→D; the 9 entry must be discarded.
	g := search.NewGraph[string]()
	g.AddVertex("S", search.Start)
	g.AddVertex("Z", search.Goal)
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "D", 9))
	require.NoError(t, g.AddEdge("A", "D", 1))
	require.NoError(t, g.AddEdge("D", "Z", 20))

	var discarded []search.Node[string]
	sol, err := search.Run(g, search.UCS,
		search.WithOnDiscard(func(n search.Node[string]) { discarded = append(discarded, n) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "D", "Z"}, sol.Path)
	assert.Equal(t, int64(22), sol.Cost)
	assert.Equal(t, []search.Node[string]{{Cost: 9, ID: "D"}}, discarded)
}

func TestRun_StartIsGoal(t *testing.T) {
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := search.NewGraph[string]()
			g.AddVertex("A", search.Start)
			require.NoError(t, g.AddUndirectedEdge("A", "B", 1))

			sol, err := search.Run(g, algo, search.WithGoal(func(id string) bool { return id == "A" }))
			require.NoError(t, err)
			assert.Equal(t, []string{"A"}, sol.Path)
			assert.Equal(t, int64(0), sol.Cost)
			assert.Equal(t, 0, sol.Expanded)
			assert.Equal(t, 0, sol.Tree.Len())
			assert.Equal(t, "A", sol.String())
		})
	}
}

func TestRun_GoalPredicate(t *testing.T) {
	// C is not labeled Goal; the predicate makes it one
	sol, err := search.Run(fixture.RunningExample(), search.UCS, search.WithGoal(func(id string) bool { return id == "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, sol.Path)
	assert.Equal(t, int64(12), sol.Cost)
}

func TestRun_StartAdjacentGoalSingleStep(t *testing.T) {
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := search.NewGraph[string]()
			g.AddVertex("A", search.Start)
			g.AddVertex("B", search.Goal)
			require.NoError(t, g.AddUndirectedEdge("A", "B", 4))

			sol, err := search.Run(g, algo)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B"}, sol.Path)
			assert.Equal(t, int64(4), sol.Cost)
			assert.Equal(t, 1, sol.Tree.Len())
		})
	}
}

func TestRun_SiblingOrder(t *testing.T) {
	// Children are inserted out of order. DFS and BFS explore them ascending;
	// UCS pops the most recently pushed of equal cost first, so descending.
	g := search.NewGraph[string]()
	g.AddVertex("S", search.Start)
	for _, c := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddEdge("S", c, 1))
	}

	want := map[search.Algorithm][]string{
		search.DFS: {"S", "a", "b", "c"},
		search.BFS: {"S", "a", "b", "c"},
		search.UCS: {"S", "c", "b", "a"},
	}
	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			var popped []string
			_, err := search.Run(g, algo, search.WithOnDequeue(func(n search.Node[string]) {
				popped = append(popped, n.ID)
			}))
			require.ErrorIs(t, err, search.ErrNoPathFound)
			assert.Equal(t, want[algo], popped)
		})
	}
}

func TestRun_ParallelArcsFirstMatch(t *testing.T) {
	g := search.NewGraph[string]()
	g.AddVertex("S", search.Start)
	g.AddVertex("T", search.Goal)
	require.NoError(t, g.AddEdge("S", "T", 7))
	require.NoError(t, g.AddEdge("S", "T", 1))

	for _, algo := range search.Algorithms() {
		sol, err := search.Run(g, algo)
		require.NoError(t, err, algo.String())
		assert.Equal(t, int64(7), sol.Cost, algo.String())
		assert.Equal(t, 1, sol.Tree.Len(), algo.String())
		require.NoError(t, search.Verify(g, sol))
	}
}

func TestRun_SelfLoopAndCycles(t *testing.T) {
	g := search.NewGraph[string]()
	g.AddVertex("A", search.Start)
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddUndirectedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedEdge("B", "C", 1))
	require.NoError(t, g.AddUndirectedEdge("C", "A", 1))

	for _, algo := range search.Algorithms() {
		sol, err := search.Run(g, algo)
		assert.Nil(t, sol)
		assert.ErrorIs(t, err, search.ErrNoPathFound, algo.String())
	}
}

func TestRun_MultipleStart(t *testing.T) {
	g := search.NewGraph[string]()
	g.AddVertex("Z", search.Start)
	g.AddVertex("A", search.Start)
	g.AddVertex("G", search.Goal)
	require.NoError(t, g.AddEdge("A", "G", 1))
	require.NoError(t, g.AddEdge("Z", "A", 1))

	// first-found-wins follows insertion order
	var started string
	sol, err := search.Run(g, search.BFS, search.WithOnStart(func(_ search.Algorithm, s string) { started = s }))
	require.NoError(t, err)
	assert.Equal(t, "Z", started)
	assert.Equal(t, []string{"Z", "A", "G"}, sol.Path)

	_, err = search.Run(g, search.BFS, search.WithStrictStart[string]())
	assert.ErrorIs(t, err, search.ErrMultipleStart)
}

func TestRun_StrictStartSingle(t *testing.T) {
	sol, err := search.Run(fixture.RunningExample(), search.UCS, search.WithStrictStart[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "F", "G", "E"}, sol.Path)

	_, err = search.Run(search.NewGraph[string](), search.UCS, search.WithStrictStart[string]())
	assert.ErrorIs(t, err, search.ErrNoStartNode)
}

func TestRun_MaxExpansions(t *testing.T) {
	g := fixture.RunningExample()

	var outcome search.Outcome
	_, err := search.Run(g, search.UCS,
		search.WithMaxExpansions[string](2),
		search.WithOnFinish[string](func(o search.Outcome) { outcome = o }),
	)
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Equal(t, search.Aborted, outcome)

	// a budget that covers the run changes nothing
	sol, err := search.Run(g, search.UCS, search.WithMaxExpansions[string](6))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "F", "G", "E"}, sol.Path)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(fixture.RunningExample(), search.DFS, search.WithContext[string](ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_Deterministic(t *testing.T) {
	for _, algo := range search.Algorithms() {
		first, err := search.Run(fixture.RunningExample(), algo)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := search.Run(fixture.RunningExample(), algo)
			require.NoError(t, err)
			assert.Equal(t, first.Steps, again.Steps, algo.String())
			assert.Equal(t, first.Tree.Map(), again.Tree.Map(), algo.String())
		}
	}
}

func TestRun_HooksSequence(t *testing.T) {
	var events []string
	_, err := search.Run(fixture.RunningExample(), search.DFS,
		search.WithOnStart(func(a search.Algorithm, s string) { events = append(events, fmt.Sprintf("start %s %s", a, s)) }),
		search.WithOnExpand(func(n search.Node[string], children []string) {
			events = append(events, fmt.Sprintf("expand %s %v", n.ID, children))
		}),
		search.WithOnFinish[string](func(o search.Outcome) { events = append(events, "finish "+o.String()) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start DFS A",
		"expand A [B F]",
		"expand B [C D]",
		"expand C []",
		"expand D [G]",
		"expand G [E]",
		"finish goal-found",
	}, events)
}

func TestRun_IntegerIDs(t *testing.T) {
	g := search.NewGraph[int]()
	g.AddVertex(1, search.Start)
	g.AddVertex(4, search.Goal)
	require.NoError(t, g.AddUndirectedEdge(1, 3, 1))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 5))
	require.NoError(t, g.AddUndirectedEdge(2, 4, 1))
	require.NoError(t, g.AddUndirectedEdge(3, 4, 1))

	sol, err := search.Run(g, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, sol.Path)

	sol, err = search.Run(g, search.UCS)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, sol.Path)
	assert.Equal(t, "1 -> 3 -> 4", sol.String())
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range search.Algorithms() {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := search.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}

func TestParseState(t *testing.T) {
	for in, want := range map[string]search.State{"": search.Neutral, "Start": search.Start, " goal ": search.Goal, "neutral": search.Neutral} {
		got, err := search.ParseState(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseState("middle")
	assert.ErrorIs(t, err, search.ErrUnknownState)
	assert.Equal(t, "goal", search.Goal.String())
}
