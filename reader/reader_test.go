package reader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrRobotMan/puzlib/reader"
	"github.com/MrRobotMan/puzlib/vec"
)

func TestContents_LiteralFallback(t *testing.T) {
	// A source that is not a file path is treated as the input itself.
	text, err := reader.Contents("hello\nworld")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)
}

func TestContents_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0o644))

	text, err := reader.Contents(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", text)

	// The same path works through a higher-level reader too.
	nums, err := reader.Numbers[int](path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestLines_SkipsEmpty(t *testing.T) {
	lines, err := reader.Lines("a\n\nb\nc\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestNumbers(t *testing.T) {
	nums, err := reader.Numbers[int64]("10\n-3\n42\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{10, -3, 42}, nums)

	_, err = reader.Numbers[int]("12\nx\n")
	assert.ErrorIs(t, err, reader.ErrParse)
}

func TestNumbers_OutOfRange(t *testing.T) {
	// Values that do not fit T fail loudly instead of truncating.
	_, err := reader.Numbers[int8]("300\n")
	assert.ErrorIs(t, err, reader.ErrParse)

	_, err = reader.Numbers[uint64]("-1\n")
	assert.ErrorIs(t, err, reader.ErrParse)

	nums, err := reader.Numbers[int8]("127\n-128\n")
	require.NoError(t, err)
	assert.Equal(t, []int8{127, -128}, nums)
}

func TestNumberLists(t *testing.T) {
	lists, err := reader.NumberLists[int]("1 2 3\n4 5 6\n", " ")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, lists)
}

func TestNumberRecords(t *testing.T) {
	recs, err := reader.NumberRecords[int]("1234\n4567\n\n3423\n2543\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1234, 4567}, {3423, 2543}}, recs)
}

func TestStringRecords(t *testing.T) {
	recs, err := reader.StringRecords("first\nrecord\n\nsecond")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first\nrecord", recs[0])
}

func TestChars(t *testing.T) {
	chars, err := reader.Chars("ab\ncd\n")
	require.NoError(t, err)
	assert.Equal(t, []rune("abcd"), chars)
}

func TestLineSep(t *testing.T) {
	parts, err := reader.LineSep("  a-b-c \n", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}

func TestCSVLine(t *testing.T) {
	nums, err := reader.CSVLine[int]("3,8,1001,72\n")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8, 1001, 72}, nums)
}

func TestGrid(t *testing.T) {
	g, err := reader.Grid("..#\n#..\n")
	require.NoError(t, err)
	assert.Equal(t, [][]rune{{'.', '.', '#'}, {'#', '.', '.'}}, g)
}

func TestDigitGrid(t *testing.T) {
	g, err := reader.DigitGrid("123\n456\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, g)

	_, err = reader.DigitGrid("12\n3x\n")
	assert.ErrorIs(t, err, reader.ErrParse)
}

func TestGridMap(t *testing.T) {
	m, err := reader.GridMap(".#\n#.\n")
	require.NoError(t, err)
	assert.Len(t, m, 4)
	assert.Equal(t, '#', m[vec.V2[int]{X: 0, Y: 1}])
	assert.Equal(t, '#', m[vec.V2[int]{X: 1, Y: 0}])
	assert.Equal(t, '.', m[vec.V2[int]{X: 0, Y: 0}])
}

func TestGridRecords(t *testing.T) {
	recs, err := reader.GridRecords("..##.\n.#...\n\n..#..\n....#")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, [][]rune{
		{'.', '.', '#', '#', '.'},
		{'.', '#', '.', '.', '.'},
	}, recs[0])
	assert.Equal(t, [][]rune{
		{'.', '.', '#', '.', '.'},
		{'.', '.', '.', '.', '#'},
	}, recs[1])
}
