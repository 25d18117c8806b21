// Package reader turns raw puzzle input into the data structures solutions
// start from: lines, numbers, delimiter-separated records, and character
// grids.
//
// Every function takes a single source string that is either a path to an
// input file or the input text itself: if a file exists at that path its
// contents are read, otherwise the string is parsed as-is. That makes the
// same call work for real inputs and for inline test fixtures.
//
// Record readers split on blank lines ("\n\n"); list readers split each line
// on a caller-supplied separator. Numeric readers are generic over the
// built-in integer types.
//
// Errors: a file that exists but cannot be read wraps ErrRead; any value
// that fails numeric parsing wraps ErrParse with the offending token.
package reader
