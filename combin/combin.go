package combin

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Permutations returns every distinct ordering of items, in lexicographic
// order. Repeated elements are handled: each distinct ordering appears
// exactly once. The input is not modified; each returned slice is freshly
// allocated.
//
// The count is n! / (d1!·d2!·…) for duplicate multiplicities d — it still
// grows fast, so keep inputs small.
func Permutations[T constraints.Ordered](items []T) [][]T {
	if len(items) == 0 {
		return nil
	}
	cur := slices.Clone(items)
	slices.Sort(cur)

	perms := [][]T{slices.Clone(cur)}
	for NextPerm(cur) {
		perms = append(perms, slices.Clone(cur))
	}

	return perms
}

// NextPerm advances s to its next lexicographic permutation in place.
// It reports false, leaving s untouched, when s is already the last
// (descending) permutation.
func NextPerm[T constraints.Ordered](s []T) bool {
	// 1. Find the rightmost ascent s[i] < s[i+1].
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// 2. Find the rightmost element greater than the pivot and swap.
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]

	// 3. Reverse the suffix to minimize it.
	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return true
}

// Combinations returns every k-element subset of items, preserving input
// order within each subset. k outside [0, len(items)] yields nil; k == 0
// yields a single empty combination.
func Combinations[T any](items []T, k int) [][]T {
	if k < 0 || k > len(items) {
		return nil
	}

	out := make([][]T, 0, Choose(len(items), k))
	comb := make([]T, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(comb) == k {
			out = append(out, slices.Clone(comb))
			return
		}
		// Prune: not enough elements left to fill the combination.
		for i := start; len(items)-i >= k-len(comb); i++ {
			comb = append(comb, items[i])
			walk(i + 1)
			comb = comb[:len(comb)-1]
		}
	}
	walk(0)

	return out
}

// Choose returns the binomial coefficient C(n, k), the number of k-element
// subsets of an n-element set. Out-of-range k yields 0.
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}

	return c
}
