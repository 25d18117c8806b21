package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// V2 is a 2D integer vector. X is the row, Y is the column.
type V2[T constraints.Signed] struct {
	X, Y T
}

// Add returns v + o componentwise.
func (v V2[T]) Add(o V2[T]) V2[T] { return V2[T]{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o componentwise.
func (v V2[T]) Sub(o V2[T]) V2[T] { return V2[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v scaled by factor.
func (v V2[T]) Scale(factor T) V2[T] { return V2[T]{X: v.X * factor, Y: v.Y * factor} }

// Manhattan returns the taxicab distance |v.X-o.X| + |v.Y-o.Y|.
func (v V2[T]) Manhattan(o V2[T]) T { return absDiff(v.X, o.X) + absDiff(v.Y, o.Y) }

// Dot returns the dot product v·o.
func (v V2[T]) Dot(o V2[T]) T { return v.X*o.X + v.Y*o.Y }

// Cross returns the cross product v×o of the vectors lifted into the Z = 0
// plane. Only the Z component can be non-zero; its sign gives the turn
// direction from v to o and its magnitude twice the triangle area.
func (v V2[T]) Cross(o V2[T]) V3[T] {
	return V3[T]{Z: v.X*o.Y - v.Y*o.X}
}

// Dist returns the Euclidean (straight-line) distance between v and o.
func (v V2[T]) Dist(o V2[T]) float64 {
	dx, dy := float64(absDiff(v.X, o.X)), float64(absDiff(v.Y, o.Y))

	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the vector as "(x, y)".
func (v V2[T]) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// Axis names a coordinate axis of a V3, used to project onto a plane.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// V3 is a 3D integer vector.
type V3[T constraints.Signed] struct {
	X, Y, Z T
}

// Add returns v + o componentwise.
func (v V3[T]) Add(o V3[T]) V3[T] { return V3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

// Sub returns v - o componentwise.
func (v V3[T]) Sub(o V3[T]) V3[T] { return V3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// Scale returns v scaled by factor.
func (v V3[T]) Scale(factor T) V3[T] {
	return V3[T]{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Manhattan returns the taxicab distance between v and o.
func (v V3[T]) Manhattan(o V3[T]) T {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y) + absDiff(v.Z, o.Z)
}

// Dot returns the dot product v·o.
func (v V3[T]) Dot(o V3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v×o, perpendicular to both inputs.
func (v V3[T]) Cross(o V3[T]) V3[T] {
	return V3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Planar projects v onto the plane whose normal is the given axis:
// AxisX → (Y, Z), AxisY → (X, Z), AxisZ → (X, Y).
func (v V3[T]) Planar(normal Axis) V2[T] {
	switch normal {
	case AxisX:
		return V2[T]{X: v.Y, Y: v.Z}
	case AxisY:
		return V2[T]{X: v.X, Y: v.Z}
	default:
		return V2[T]{X: v.X, Y: v.Y}
	}
}

// String renders the vector as "(x, y, z)".
func (v V3[T]) String() string { return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z) }

// absDiff returns |a - b| without relying on a signed Abs.
func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}
