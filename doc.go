// Package lvsearch runs uninformed search over small labeled weighted graphs.
//
// One search loop serves depth-first, breadth-first and uniform-cost search;
// the algorithm only chooses the frontier discipline (stack, queue or
// min-cost heap). Every run returns the path, its cost and the parent-pointer
// search tree, which can be rendered as a Mermaid chart.
//
// Packages:
//
//	core      thread-safe generic labeled directed graph
//	frontier  LIFO, FIFO and min-cost frontiers
//	search    Run, options and hooks, search tree, path reconstruction, Verify
//	render    Mermaid and edge-list output for search trees
//	fixture   the running example graph and the YAML graph loader
//	builder   deterministic generated graphs (path, cycle, grid, random)
//	tracelog  logrus tracing through search hooks
//	cmd       the lvsearch command line
//
// Quick start:
//
//	g := fixture.RunningExample()
//	sol, err := search.Run(g, search.UCS)
//	// sol.Path == [A F G E], sol.Cost == 14
package lvsearch
