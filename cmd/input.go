package cmd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Input contains the input for the root command
type Input struct {
	algorithm     string
	graphPath     string
	mermaid       bool
	edges         bool
	strictStart   bool
	maxExpansions int
	verbose       bool
	jsonLogger    bool
}

// Algorithms resolves the --algo flag; "all" selects DFS, BFS and UCS in that order.
func (i *Input) Algorithms() ([]search.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(i.algorithm), "all") || i.algorithm == "" {
		return search.Algorithms(), nil
	}
	var out []search.Algorithm
	for _, name := range strings.Split(i.algorithm, ",") {
		a, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("--algo: %w", err)
		}
		out = append(out, a)
	}

	return out, nil
}
