package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionalNeighbor_S4TieBreakSmallerID(t *testing.T) {
	// S4 — two candidates at equal vertical delta, tie broken by id.
	ref := Rect{X: 900, Y: 450, W: 20, H: 20} // center (910, 460), close enough to (900,500) focus
	ref = Rect{X: 890, Y: 490, W: 20, H: 20}  // center (900, 500)

	candidates := []Candidate{
		{ID: 2, Rect: Rect{X: 1090, Y: 90, W: 20, H: 20}},  // center (1100, 100)
		{ID: 1, Rect: Rect{X: 1090, Y: 890, W: 20, H: 20}}, // center (1100, 900)
	}

	got, ok := DirectionalNeighbor(ref, candidates, Right)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID, "equal score must break tie toward smaller id")
}

func TestDirectionalNeighbor_NoEligibleCandidate(t *testing.T) {
	ref := Rect{X: 0, Y: 0, W: 100, H: 100}
	candidates := []Candidate{{ID: 1, Rect: Rect{X: -200, Y: 0, W: 100, H: 100}}}

	_, ok := DirectionalNeighbor(ref, candidates, Right)
	assert.False(t, ok)
}

func TestDirectionalNeighbor_S5Float(t *testing.T) {
	ref := Rect{X: 100, Y: 100, W: 200, H: 200}
	candidates := []Candidate{
		{ID: 2, Rect: Rect{X: 400, Y: 100, W: 200, H: 200}},
		{ID: 3, Rect: Rect{X: 100, Y: 400, W: 200, H: 200}},
	}

	got, ok := DirectionalNeighbor(ref, candidates, Right)
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestOutputNeighbor_ClosestPointVariant(t *testing.T) {
	left := Rect{X: 0, Y: 0, W: 1000, H: 1000}
	right := Rect{X: 1000, Y: 0, W: 1000, H: 1000}

	got, ok := OutputNeighbor(left, []Candidate{{ID: 1, Rect: right}}, Right)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
}

func TestAxisOf(t *testing.T) {
	assert.Equal(t, Horizontal, AxisOf(Left))
	assert.Equal(t, Horizontal, AxisOf(Right))
	assert.Equal(t, Vertical, AxisOf(Up))
	assert.Equal(t, Vertical, AxisOf(Down))
}

func TestIsPrevious(t *testing.T) {
	assert.True(t, Up.IsPrevious())
	assert.True(t, Left.IsPrevious())
	assert.False(t, Down.IsPrevious())
	assert.False(t, Right.IsPrevious())
}
