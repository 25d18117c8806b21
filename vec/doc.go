// Package vec provides small 2D and 3D integer vector types for grid puzzles,
// generic over any signed integer type.
//
// V2 and V3 are plain value types: comparable, usable as map keys, and cheap
// to copy. Coordinates follow the row/column reading order common in text
// grids — X is the row (growing downward), Y is the column (growing right).
//
// Beyond arithmetic (Add, Sub, Scale, Dot, Cross) and distances (Manhattan,
// Euclidean Dist), the package offers the direction sets every grid puzzle
// needs:
//
//   - Cardinals — N, E, S, W
//   - Ordinals  — NE, SE, SW, NW
//   - Compass   — all eight, clockwise from N
//
// and ParseDir, which maps the direction characters found in puzzle inputs
// (NSEW, UDLR, ^v<>) to unit vectors.
package vec
