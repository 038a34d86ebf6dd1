package bst

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkOrdered verifies BST ordering, depths and horizontal bands.
func checkOrdered(t *testing.T, n *Node, lo, hi int, depth int, xMin, xMax float64) {
	t.Helper()
	if n == nil {
		return
	}
	assert.Greater(t, n.Value, lo, "value %d breaks lower bound", n.Value)
	assert.Less(t, n.Value, hi, "value %d breaks upper bound", n.Value)
	assert.Equal(t, depth, n.Depth, "depth of %d", n.Value)
	assert.Greater(t, n.XFraction, xMin, "xFraction of %d", n.Value)
	assert.Less(t, n.XFraction, xMax, "xFraction of %d", n.Value)

	if n.Left != nil {
		assert.Less(t, n.Left.XFraction, n.XFraction)
	}
	if n.Right != nil {
		assert.Greater(t, n.Right.XFraction, n.XFraction)
	}
	checkOrdered(t, n.Left, lo, n.Value, depth+1, xMin, n.XFraction)
	checkOrdered(t, n.Right, n.Value, hi, depth+1, n.XFraction, xMax)
}

func TestGenerateShape(t *testing.T) {
	tests := []struct {
		depth    int
		min, max int
	}{
		{1, 1, 1},
		{2, 1, 3},
		{3, 1, 7},
		{3, 1, 50},
		{4, 1, 100},
		{5, 10, 500},
		{6, 1, 1000},
	}

	rng := rand.New(rand.NewSource(42))
	for _, tt := range tests {
		root, err := Generate(rng, tt.depth, tt.min, tt.max)
		require.NoError(t, err, "Generate(%d, %d, %d)", tt.depth, tt.min, tt.max)

		assert.Equal(t, NodeCount(tt.depth), Count(root))
		assert.Equal(t, tt.depth, Height(root))
		assert.Equal(t, 0, root.Depth)
		assert.Equal(t, 0.5, root.XFraction)

		values := Values(root)
		for i, v := range values {
			assert.GreaterOrEqual(t, v, tt.min)
			assert.LessOrEqual(t, v, tt.max)
			if i > 0 {
				assert.Less(t, values[i-1], v, "values must be distinct and ascending")
			}
		}
		checkOrdered(t, root, tt.min-1, tt.max+1, 0, 0, 1)
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	a, err := Generate(nil, 4, 1, 100)
	require.NoError(t, err)
	b, err := Generate(nil, 4, 1, 100)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, root := range []*Node{a, b} {
		Walk(root, func(n *Node) {
			assert.NotEmpty(t, n.ID)
			assert.False(t, ids[n.ID], "duplicate id %s", n.ID)
			ids[n.ID] = true
		})
	}
	assert.Len(t, ids, 30)
}

func TestGenerateRangeTooSmall(t *testing.T) {
	// depth 3 needs 7 nodes
	_, err := Generate(nil, 3, 1, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRangeTooSmall), "got %v", err)

	_, err = Generate(nil, 2, 10, 1)
	assert.ErrorIs(t, err, ErrRangeTooSmall)
}

func TestGenerateExtremeRange(t *testing.T) {
	root, err := Generate(rand.New(rand.NewSource(3)), 3, math.MinInt, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 7, Count(root))

	root, err = Generate(nil, 2, math.MaxInt-2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}, Values(root))

	_, err = Generate(nil, 3, math.MaxInt-5, math.MaxInt)
	assert.ErrorIs(t, err, ErrRangeTooSmall)
}

func TestGenerateInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -1, 31} {
		_, err := Generate(nil, depth, 1, 1000)
		assert.ErrorIs(t, err, ErrInvalidDepth, "depth %d", depth)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(99)), 5, 1, 400)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(99)), 5, 1, 400)
	require.NoError(t, err)

	assert.Equal(t, Values(a), Values(b))
}

func TestFillEvenlyStaysInRange(t *testing.T) {
	tests := []struct {
		name            string
		count, min, max int
		preset          []int
	}{
		{"exact fit", 7, 1, 7, nil},
		{"borderline step", 7, 1, 8, []int{8}},
		{"step rounds to zero", 15, 100, 114, []int{100, 101}},
		{"collisions with step", 7, 0, 20, []int{0, 3, 6, 9, 12, 15}},
		{"negative range", 3, -5, -3, nil},
		{"full int range", 7, math.MinInt, math.MaxInt, nil},
		{"top of int", 3, math.MaxInt - 2, math.MaxInt, []int{math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[int]struct{})
			for _, v := range tt.preset {
				seen[v] = struct{}{}
			}
			fillEvenly(seen, tt.count, tt.min, tt.max)

			assert.Len(t, seen, tt.count)
			for v := range seen {
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

// A source that always returns the same value forces the fallback fill.
type constSource struct{}

func (constSource) Int63() int64 { return 0 }
func (constSource) Seed(int64)   {}

func TestGenerateFallbackFill(t *testing.T) {
	rng := rand.New(constSource{})
	root, err := Generate(rng, 4, 1, 15)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, Values(root))

	root, err = Generate(rng, 3, 1, 1000)
	require.NoError(t, err)
	values := Values(root)
	require.Len(t, values, 7)
	for i := 1; i < len(values); i++ {
		assert.Less(t, values[i-1], values[i])
	}
	assert.LessOrEqual(t, values[len(values)-1], 1000)
}

func TestNodeCount(t *testing.T) {
	tests := []struct {
		depth    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{3, 7},
		{6, 63},
	}
	for _, tt := range tests {
		if got := NodeCount(tt.depth); got != tt.expected {
			t.Errorf("NodeCount(%d) = %d, expected %d", tt.depth, got, tt.expected)
		}
	}
}
