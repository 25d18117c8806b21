// Package grid treats a rectangular 2D slice of integer cell values as a
// search space. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Adapters producing search.NeighborFunc / search.WeightedNeighborFunc
//     callbacks, so a grid plugs straight into BFS, DFS, Dijkstra or AStar
//   - Connected-component extraction over a caller-defined cell predicate
//
// Cells are addressed by vec.V2[int] coordinates: X is the row, Y is the
// column. A Grid is immutable once built — the constructor deep-copies its
// input — so one Grid can safely back any number of concurrent searches.
package grid
