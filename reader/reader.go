package reader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/MrRobotMan/puzlib/vec"
)

// Sentinel errors for input reading and parsing.
var (
	// ErrRead is returned when a source names an existing file that cannot
	// be read.
	ErrRead = errors.New("reader: cannot read input file")

	// ErrParse is returned when a token cannot be parsed as a number.
	ErrParse = errors.New("reader: cannot parse number")
)

// Contents resolves a source to input text: if src names an existing file its
// contents are returned, otherwise src itself is the input.
func Contents(src string) (string, error) {
	if _, err := os.Stat(src); err != nil {
		return src, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrRead, src, err)
	}

	return string(data), nil
}

// Lines returns the non-empty lines of the input.
func Lines(src string) ([]string, error) {
	text, err := Contents(src)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}

	return lines, nil
}

// Numbers reads one number per line.
func Numbers[T constraints.Integer](src string) ([]T, error) {
	lines, err := Lines(src)
	if err != nil {
		return nil, err
	}

	return parseAll[T](lines)
}

// NumberLists reads each line as a list of numbers separated by sep.
func NumberLists[T constraints.Integer](src, sep string) ([][]T, error) {
	lines, err := Lines(src)
	if err != nil {
		return nil, err
	}
	out := make([][]T, 0, len(lines))
	for _, l := range lines {
		nums, err := parseAll[T](strings.Split(l, sep))
		if err != nil {
			return nil, err
		}
		out = append(out, nums)
	}

	return out, nil
}

// StringRecords splits the input into records separated by blank lines.
func StringRecords(src string) ([]string, error) {
	text, err := Contents(src)
	if err != nil {
		return nil, err
	}
	var recs []string
	for _, r := range strings.Split(text, "\n\n") {
		if r != "" {
			recs = append(recs, r)
		}
	}

	return recs, nil
}

// NumberRecords reads blank-line-separated records of one number per line.
//
//	1234        →  [[1234 4567] [3423 2543]]
//	4567
//
//	3423
//	2543
func NumberRecords[T constraints.Integer](src string) ([][]T, error) {
	recs, err := StringRecords(src)
	if err != nil {
		return nil, err
	}
	out := make([][]T, 0, len(recs))
	for _, rec := range recs {
		var fields []string
		for _, l := range strings.Split(rec, "\n") {
			if l != "" {
				fields = append(fields, l)
			}
		}
		nums, err := parseAll[T](fields)
		if err != nil {
			return nil, err
		}
		out = append(out, nums)
	}

	return out, nil
}

// Chars returns the input as a flat sequence of characters, newlines removed.
func Chars(src string) ([]rune, error) {
	text, err := Contents(src)
	if err != nil {
		return nil, err
	}
	var chars []rune
	for _, r := range text {
		if r != '\n' {
			chars = append(chars, r)
		}
	}

	return chars, nil
}

// LineSep splits a single-line input on sep, trimming surrounding whitespace.
func LineSep(src, sep string) ([]string, error) {
	text, err := Contents(src)
	if err != nil {
		return nil, err
	}

	return strings.Split(strings.TrimSpace(text), sep), nil
}

// CSVLine reads a single comma-separated line of numbers.
func CSVLine[T constraints.Integer](src string) ([]T, error) {
	fields, err := LineSep(src, ",")
	if err != nil {
		return nil, err
	}

	return parseAll[T](fields)
}

// Grid reads the input as a grid of characters, one row per line.
func Grid(src string) ([][]rune, error) {
	text, err := Contents(src)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	grid := make([][]rune, len(lines))
	for i, l := range lines {
		grid[i] = []rune(l)
	}

	return grid, nil
}

// DigitGrid reads the input as a grid of single decimal digits.
// Non-digit characters wrap ErrParse.
func DigitGrid(src string) ([][]int, error) {
	rows, err := Grid(src)
	if err != nil {
		return nil, err
	}
	grid := make([][]int, len(rows))
	for i, row := range rows {
		grid[i] = make([]int, len(row))
		for j, r := range row {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrParse, r, i, j)
			}
			grid[i][j] = int(r - '0')
		}
	}

	return grid, nil
}

// GridMap reads the input as a map from cell coordinate to character,
// with X as the row and Y as the column.
func GridMap(src string) (map[vec.V2[int]]rune, error) {
	rows, err := Grid(src)
	if err != nil {
		return nil, err
	}
	m := make(map[vec.V2[int]]rune)
	for x, row := range rows {
		for y, r := range row {
			m[vec.V2[int]{X: x, Y: y}] = r
		}
	}

	return m, nil
}

// GridRecords reads blank-line-separated records, each a character grid.
func GridRecords(src string) ([][][]rune, error) {
	recs, err := StringRecords(src)
	if err != nil {
		return nil, err
	}
	out := make([][][]rune, 0, len(recs))
	for _, rec := range recs {
		lines := strings.Split(strings.TrimSpace(rec), "\n")
		grid := make([][]rune, len(lines))
		for i, l := range lines {
			grid[i] = []rune(l)
		}
		out = append(out, grid)
	}

	return out, nil
}

// parseAll parses every field as a signed integer of type T.
// Values outside T's range wrap ErrParse rather than silently truncating.
func parseAll[T constraints.Integer](fields []string) ([]T, error) {
	nums := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, f)
		}
		// Round-trip check: conversion to a narrower or unsigned T must
		// preserve the value and its sign.
		if int64(T(n)) != n || (n < 0 && T(n) > 0) {
			return nil, fmt.Errorf("%w: %q overflows %T", ErrParse, f, T(0))
		}
		nums = append(nums, T(n))
	}

	return nums, nil
}
