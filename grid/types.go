// Package grid defines core types, options, and sentinel errors for the
// grid package.
package grid

import (
	"errors"

	"github.com/MrRobotMan/puzlib/vec"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn4.
	Conn Connectivity
}

// Option configures grid construction via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConn8 enables 8-directional (diagonal-inclusive) connectivity.
func WithConn8() Option {
	return func(o *Options) {
		o.Conn = Conn8
	}
}

// Grid is an immutable rectangular field of integer cell values.
// Neighbor offsets are precomputed from the chosen connectivity.
type Grid struct {
	width, height int
	cells         [][]int
	conn          Connectivity
	offsets       []vec.V2[int]
}
