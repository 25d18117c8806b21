package mathx

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b by the iterative
// Euclidean algorithm. GCD(0, b) == b and GCD(a, 0) == a; GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b.
// LCM(0, b) == LCM(a, 0) == 0. Dividing before multiplying keeps the
// intermediate value within range for results that fit in T.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

// Mid returns the midpoint element(s) of s: one element for odd lengths, two
// for even. Slices of length ≤ 2 are returned as-is. If s is sorted the
// result is its median value(s). The returned slice aliases s.
func Mid[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n <= 2 {
		return s
	}
	m := n / 2
	if n%2 == 1 {
		return s[m : m+1]
	}

	return s[m-1 : m+1]
}
