// Package dsu implements a disjoint-set union (union-find) structure over
// dense integer element IDs 0..n-1.
//
// Find uses path compression; Union attaches by rank (default) or by tree
// size (NewBySize). Both variants give near-constant amortized operations:
// O(α(n)) per Find/Union, where α is the inverse Ackermann function.
//
// Typical puzzle uses: connected components of a grid, Kruskal-style edge
// merging, equivalence-class bookkeeping.
package dsu
