package vec

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrUnknownDir is returned by ParseDir for characters that do not name a
// direction.
var ErrUnknownDir = errors.New("vec: unknown direction")

// Cardinals returns the four orthogonal unit vectors in N, E, S, W order.
func Cardinals[T constraints.Signed]() [4]V2[T] {
	return [4]V2[T]{
		{X: -1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: -1},
	}
}

// Ordinals returns the four diagonal unit vectors in NE, SE, SW, NW order.
func Ordinals[T constraints.Signed]() [4]V2[T] {
	return [4]V2[T]{
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: -1},
	}
}

// Compass returns all eight unit vectors clockwise from N:
// N, NE, E, SE, S, SW, W, NW.
func Compass[T constraints.Signed]() [8]V2[T] {
	return [8]V2[T]{
		{X: -1, Y: 0},
		{X: -1, Y: 1},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 1, Y: -1},
		{X: 0, Y: -1},
		{X: -1, Y: -1},
	}
}

// ParseDir maps a direction character to its unit vector. Accepted spellings
// per direction:
//
//	north: 'N', 'U', '^'    south: 'S', 'D', 'v'
//	east:  'E', 'R', '>'    west:  'W', 'L', '<'
//
// Unknown characters return ErrUnknownDir.
func ParseDir[T constraints.Signed](r rune) (V2[T], error) {
	switch r {
	case 'N', 'U', '^':
		return V2[T]{X: -1, Y: 0}, nil
	case 'S', 'D', 'v':
		return V2[T]{X: 1, Y: 0}, nil
	case 'E', 'R', '>':
		return V2[T]{X: 0, Y: 1}, nil
	case 'W', 'L', '<':
		return V2[T]{X: 0, Y: -1}, nil
	default:
		return V2[T]{}, fmt.Errorf("%w: %q", ErrUnknownDir, r)
	}
}
