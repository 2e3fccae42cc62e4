// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ..." so it is easy to grep in logs.
// Callers match these with errors.Is; public methods wrap them with context.
var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("grid: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrRagged indicates that FromRows received rows of different lengths.
	ErrRagged = errors.New("grid: rows have different lengths")

	// ErrNilGrid indicates that a nil *Dense was passed where a grid is required.
	ErrNilGrid = errors.New("grid: nil grid")
)
