// Package mathx collects the handful of number helpers puzzle solutions keep
// reaching for: greatest common divisor, least common multiple, and slice
// midpoints for median lookups.
//
// All functions are generic over the built-in integer types and allocate
// nothing.
package mathx
