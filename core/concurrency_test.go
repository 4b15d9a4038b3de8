// Package core_test verifies thread-safety of core.Graph under concurrent construction.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all arcs appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.New[string, tag, int64]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num+1, g.Order())
}

// TestConcurrentReadWrite mixes undirected inserts with readers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.New[string, tag, int64]()
	g.AddVertex("Base", tagStart)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddUndirectedEdge("Base", fmt.Sprintf("V%d", id), 1)
		}(i)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_ = g.Neighbors(v)
				_, _ = g.Label(v)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 2*rounds, g.Size())
}
