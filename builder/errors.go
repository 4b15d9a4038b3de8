// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
// Policy:
//   - Callers branch with errors.Is; context is attached with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrUnknownVertex indicates Mark was given an ID the graph does not contain.
var ErrUnknownVertex = errors.New("builder: unknown vertex")

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method and step context to err.
func wrapf(method, step string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, step, err)
}
