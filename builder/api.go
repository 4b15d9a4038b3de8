// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator and the Constructor type.
// Determinism:
//   - Constructors run in argument order against one resolved config.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Constructor applies one deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph[string, search.State, int64], cfg builderConfig) error

// BuildGraph creates an empty search graph, resolves bopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, search.State, int64], error) {
	g := search.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
