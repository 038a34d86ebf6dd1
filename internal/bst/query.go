package bst

import (
	"math/rand"

	"github.com/vovakirdan/binary-swipes/internal/core"
)

// DefaultMinDepth is the shallowest depth a target is picked from.
const DefaultMinDepth = 2

// PathTo returns the values visited while searching for target, root first
// and target last. It returns (nil, false) if target is not in the tree.
func PathTo(root *Node, target int) ([]int, bool) {
	var path []int
	for n := root; n != nil; {
		path = append(path, n.Value)
		switch {
		case target == n.Value:
			return path, true
		case target < n.Value:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil, false
}

// Find returns the node holding value, or nil.
func Find(root *Node, value int) *Node {
	n := root
	for n != nil && n.Value != value {
		if value < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// Height returns the number of levels below and including node.
func Height(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + max(Height(node.Left), Height(node.Right))
}

// PickTarget returns the value of a node chosen uniformly among those at
// depth >= minDepth. If no node is that deep it chooses among the deepest
// nodes instead. root must not be nil.
func PickTarget(rng *rand.Rand, root *Node, minDepth int) int {
	var candidates []*Node
	Walk(root, func(n *Node) {
		if n.Depth >= minDepth {
			candidates = append(candidates, n)
		}
	})
	if len(candidates) == 0 {
		candidates = NodesAtDepth(root, Height(root)-1)
	}
	return candidates[core.RandomInt(rng, 0, len(candidates)-1)].Value
}

// Walk calls fn for every node in pre-order.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	fn(root)
	Walk(root.Left, fn)
	Walk(root.Right, fn)
}

// Count returns the number of nodes in the tree.
func Count(root *Node) int {
	n := 0
	Walk(root, func(*Node) { n++ })
	return n
}

// Values returns the tree's values in ascending order.
func Values(root *Node) []int {
	var out []int
	var inorder func(*Node)
	inorder = func(n *Node) {
		if n == nil {
			return
		}
		inorder(n.Left)
		out = append(out, n.Value)
		inorder(n.Right)
	}
	inorder(root)
	return out
}

// NodesAtDepth returns the nodes at depth d, left to right.
func NodesAtDepth(root *Node, d int) []*Node {
	var out []*Node
	var visit func(*Node)
	visit = func(n *Node) {
		if n == nil || n.Depth > d {
			return
		}
		if n.Depth == d {
			out = append(out, n)
			return
		}
		visit(n.Left)
		visit(n.Right)
	}
	visit(root)
	return out
}
