// Package builder assembles deterministic search graphs for tests,
// benchmarks and the CLI's generated inputs.
//
// A graph is built by BuildGraph from an ordered list of Constructors.
// Each constructor adds vertices and undirected weighted edges, or labels
// existing vertices as Start or Goal:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(10, 10),
//		builder.Mark("0,0", search.Start),
//		builder.Mark("9,9", search.Goal),
//	)
//
// Determinism:
//
//	Same options, same seed and the same constructor order produce identical
//	graphs: vertex insertion order, arc order and weights included.
//
// Errors:
//
//	Constructors never panic; they return ErrTooFewVertices,
//	ErrInvalidProbability or ErrUnknownVertex wrapped with method context.
//	Option constructors (WithX) panic on meaningless input.
package builder
