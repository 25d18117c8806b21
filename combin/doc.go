// Package combin provides the combinatorics generators puzzle solutions lean
// on: distinct permutations, k-element combinations, and binomial counts.
//
// Permutations is duplicate-aware: for input with repeated elements it
// produces each distinct ordering exactly once (e.g. [1 1 2] yields 3
// permutations, not 6), walking them in lexicographic order via the classic
// next-permutation step. Both generators materialize their full output, so
// mind the factorial/binomial growth before calling them on large inputs.
package combin
