// Package fixture builds search graphs: the seven-vertex running example and
// graphs decoded from YAML documents.
//
// Document format:
//
//	vertices:
//	  - id: A
//	    state: start
//	  - id: E
//	    state: goal
//	edges:
//	  - {from: A, to: B, weight: 5}            # undirected by default
//	  - {from: B, to: C, weight: 7, directed: true}
//
// Vertices that only appear as edge endpoints are created Neutral.
// Documents are validated before any graph is built: ids must be non-empty,
// states must be start, neutral or goal, and weights must be non-negative.
//
// Errors:
//
//   - ErrInvalidDocument  if decoding or validation fails.
package fixture
