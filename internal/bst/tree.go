// Package bst builds and queries the balanced binary search trees that make
// up a swipes level.
package bst

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/vovakirdan/binary-swipes/internal/core"
)

var (
	// ErrRangeTooSmall is returned when the value range cannot hold one
	// distinct value per node of a complete tree.
	ErrRangeTooSmall = errors.New("bst: value range too small for tree depth")

	// ErrInvalidDepth is returned for a depth below 1.
	ErrInvalidDepth = errors.New("bst: depth must be at least 1")
)

// samplingFactor bounds random sampling to samplingFactor * nodeCount draws.
const samplingFactor = 20

// maxDepth keeps 1<<depth well inside int.
const maxDepth = 30

// Node is one vertex of a generated tree.
// Children are owned exclusively by their parent.
type Node struct {
	ID        string
	Value     int
	Left      *Node
	Right     *Node
	Depth     int     // 0 for the root
	XFraction float64 // horizontal position in [0,1], root is 0.5
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

var nodeSeq atomic.Uint64

func nextID() string {
	return "node_" + strconv.FormatUint(nodeSeq.Add(1), 10)
}

// NodeCount returns the number of nodes in a complete tree of the given depth.
func NodeCount(depth int) int {
	if depth < 1 {
		return 0
	}
	return 1<<depth - 1
}

// Generate builds a perfectly balanced BST of the given depth holding
// 2^depth-1 distinct values from [minValue, maxValue].
// A nil rng draws from the process-wide source.
func Generate(rng *rand.Rand, depth, minValue, maxValue int) (*Node, error) {
	if depth < 1 || depth > maxDepth {
		return nil, fmt.Errorf("bst: cannot generate depth %d: %w", depth, ErrInvalidDepth)
	}

	count := NodeCount(depth)
	if maxValue < minValue || uint64(maxValue)-uint64(minValue) < uint64(count-1) {
		holds := 0
		if maxValue >= minValue {
			holds = maxValue - minValue + 1
		}
		return nil, fmt.Errorf("bst: depth %d needs %d values, range %d..%d holds %d: %w",
			depth, count, minValue, maxValue, holds, ErrRangeTooSmall)
	}

	values := uniqueValues(rng, count, minValue, maxValue)
	return build(values, 0, len(values)-1, 0, 0, 1), nil
}

// uniqueValues returns exactly count sorted distinct values in [min, max].
// The caller guarantees the range holds at least count values.
func uniqueValues(rng *rand.Rand, count, min, max int) []int {
	seen := make(map[int]struct{}, count)
	for attempts := 0; len(seen) < count && attempts < samplingFactor*count; attempts++ {
		seen[core.RandomInt(rng, min, max)] = struct{}{}
	}

	if len(seen) < count {
		fillEvenly(seen, count, min, max)
	}

	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	return values[:count]
}

// fillEvenly tops up seen with evenly spaced values, then with any unused
// value from the range. Values never leave [min, max].
func fillEvenly(seen map[int]struct{}, count, min, max int) {
	span := uint64(max) - uint64(min)
	step := span / uint64(count)
	if step < 1 {
		step = 1
	}
	for off := uint64(0); len(seen) < count; off += step {
		seen[int(uint64(min)+off)] = struct{}{}
		if span-off < step {
			break
		}
	}
	for off := uint64(0); len(seen) < count; off++ {
		seen[int(uint64(min)+off)] = struct{}{}
		if off == span {
			break
		}
	}
}

func build(values []int, start, end, depth int, xMin, xMax float64) *Node {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	x := (xMin + xMax) / 2
	return &Node{
		ID:        nextID(),
		Value:     values[mid],
		Depth:     depth,
		XFraction: x,
		Left:      build(values, start, mid-1, depth+1, xMin, x),
		Right:     build(values, mid+1, end, depth+1, x, xMax),
	}
}
