package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridform/termfmt/column"
)

func TestSolveAllExplicitFits(t *testing.T) {
	widths := column.Solve(30, 4, 1, []int{10, 10})
	assert.Equal(t, []column.Width{10, 10}, widths)
}

// S4-style: auto columns share surplus round-robin.
func TestSolveDistributesSurplusRoundRobin(t *testing.T) {
	widths := column.Solve(24, 4, 1, []int{0, 0})
	// base 4+4, sep 1 -> 9; surplus 15 split 8/7 by round-robin onto the
	// base of 4, giving final widths 12/11.
	assert.Equal(t, column.Width(12), widths[0])
	assert.Equal(t, column.Width(11), widths[1])
}

// P6: an explicit width is never increased.
func TestSolveNeverIncreasesExplicitWidth(t *testing.T) {
	widths := column.Solve(100, 4, 1, []int{10, 0})
	assert.Equal(t, column.Width(10), widths[0])
}

// S5-style: trimming proceeds strictly right-to-left and hides columns
// that can't stay above the minimum.
func TestSolveTrimsRightmostFirst(t *testing.T) {
	widths := column.Solve(10, 3, 1, []int{8, 8, 8})
	for i := 1; i < len(widths); i++ {
		if widths[i] > 0 {
			assert.Greater(t, widths[i-1], column.Width(0), "a visible column must not sit right of a hidden one that was trimmed later")
		}
	}
	sum := 0
	visible := 0
	for _, w := range widths {
		if w > 0 {
			sum += int(w)
			visible++
		}
	}
	if visible > 1 {
		sum += 1 * (visible - 1)
	}
	assert.LessOrEqual(t, sum, 10)
}

func TestSolveEmptyInput(t *testing.T) {
	assert.Empty(t, column.Solve(10, 4, 1, nil))
}
