package mathx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrRobotMan/puzlib/mathx"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 6, mathx.GCD(18, 48))
	assert.Equal(t, 6, mathx.GCD(48, 18), "order must not matter")
	assert.Equal(t, 6, mathx.GCD(6, 6))
	assert.Equal(t, 6, mathx.GCD(0, 6))
	assert.Equal(t, 6, mathx.GCD(6, 0))
	assert.Equal(t, 1, mathx.GCD(17, 4))
	assert.Equal(t, int64(12), mathx.GCD[int64](36, 24))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 144, mathx.LCM(18, 48))
	assert.Equal(t, 15, mathx.LCM(3, 5), "coprime inputs multiply")
	assert.Equal(t, 0, mathx.LCM(0, 6))
	assert.Equal(t, 0, mathx.LCM(6, 0))
	assert.Equal(t, 12, mathx.LCM(4, 6))
}

func TestLCM_DividesFirst(t *testing.T) {
	// a/gcd*b stays in range where a*b would overflow int32.
	var a, b int32 = 2_000_000_000, 1_000_000_000
	assert.Equal(t, a, mathx.LCM(a, b))
}

func TestMid_Odd(t *testing.T) {
	assert.Equal(t, []int{3}, mathx.Mid([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, []int{4}, mathx.Mid([]int{1, 3, 4, 5, 6}))
}

func TestMid_Even(t *testing.T) {
	assert.Equal(t, []int{2, 3}, mathx.Mid([]int{1, 2, 3, 4}))
}

func TestMid_Short(t *testing.T) {
	assert.Equal(t, []int{7}, mathx.Mid([]int{7}))
	assert.Equal(t, []int{7, 9}, mathx.Mid([]int{7, 9}))
	assert.Empty(t, mathx.Mid([]int{}))
}
