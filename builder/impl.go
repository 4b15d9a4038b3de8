// SPDX-License-Identifier: MIT
//
// File: impl.go
// Role: Path, Cycle, Grid, RandomSparse and Mark constructors.
// Determinism:
//   - Vertices are added in index (or row-major) order before any edge.
//   - Edge weights are drawn in emission order from cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	methodGrid   = "Grid"
	methodSparse = "RandomSparse"
	methodMark   = "Mark"

	minPathNodes  = 2
	minCycleNodes = 3
	minGridDim    = 1
	gridIDFmt     = "%d,%d"
)

// Path builds the chain 0–1–…–(n-1) using cfg's ID scheme.
func Path(n int) Constructor {
	return func(g *core.Graph[string, search.State, int64], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addIndexed(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return wrapf(methodPath, "AddUndirectedEdge", err)
			}
		}

		return nil
	}
}

// Cycle builds the ring 0–1–…–(n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string, search.State, int64], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addIndexed(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return wrapf(methodCycle, "AddUndirectedEdge", err)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid with fixed IDs "r,c".
// For each cell the right edge is emitted before the bottom edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string, search.State, int64], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addNeutral(g, fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return wrapf(methodGrid, "right", err)
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return wrapf(methodGrid, "bottom", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph: each unordered pair i<j
// is joined with probability p, pairs visited in lexicographic order.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string, search.State, int64], cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d (must be >= 1): %w", methodSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodSparse, p, ErrInvalidProbability)
		}
		addIndexed(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return wrapf(methodSparse, "AddUndirectedEdge", err)
				}
			}
		}

		return nil
	}
}

// Mark labels an existing vertex with state. Typically used last, once the
// topology is in place, to choose the start and goal.
func Mark(id string, state search.State) Constructor {
	return func(g *core.Graph[string, search.State, int64], _ builderConfig) error {
		if !g.HasVertex(id) {
			return fmt.Errorf("%s(%s): %w", methodMark, id, ErrUnknownVertex)
		}
		g.AddVertex(id, state)

		return nil
	}
}

// addIndexed inserts vertices idFn(0..n-1), leaving existing labels untouched.
func addIndexed(g *core.Graph[string, search.State, int64], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		addNeutral(g, cfg.idFn(i))
	}
}

func addNeutral(g *core.Graph[string, search.State, int64], id string) {
	if !g.HasVertex(id) {
		g.AddVertex(id, search.Neutral)
	}
}

func link(g *core.Graph[string, search.State, int64], cfg builderConfig, u, v string) error {
	return g.AddUndirectedEdge(u, v, cfg.weightFn(cfg.rng))
}
