// Package bsp indexes static level geometry in a binary space partitioning
// tree and answers sphere and ray queries against it.
//
// A tree is built once and is read-only afterwards. Any number of goroutines
// may query it at the same time.
package bsp

import "maze/internal/physics"

// noChild marks a missing child index.
const noChild int32 = -1

// Node is a tree node. Children and object entries are indices into the
// tree's node and object tables.
type Node struct {
	// Plane is the splitting plane. Front holds objects strictly on the side
	// its normal points to.
	Plane physics.Plane
	// Axis is the split axis (0=X, 1=Y, 2=Z).
	Axis int
	// Box is the region the node ended up covering. It is smaller than the
	// parent's half when the node retried on other axes.
	Box   physics.AABB
	Front int32
	Back  int32
	// Objects lists, for an internal node, every object stored in either
	// subtree. It is informational and never tested by queries. For a leaf it
	// holds the leaf's objects.
	Objects []int32
	// Unsplittable holds objects that straddle the plane or are static.
	Unsplittable []int32
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Front < 0 || n.Back < 0
}

// Tree is a BSP tree over a fixed set of collidables.
type Tree struct {
	nodes    []Node
	objects  []*physics.Collidable
	bound    physics.AABB
	maxDepth int
}

// Bound returns the box the tree was built for.
func (t *Tree) Bound() physics.AABB {
	return t.bound
}

func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Objects returns the indexed collidables. The slice must not be modified.
func (t *Tree) Objects() []*physics.Collidable {
	return t.objects
}

// Nodes returns the node arena. Node 0 is the root. The slice must not be
// modified.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

// Object returns the collidable at index i of the object table.
func (t *Tree) Object(i int32) *physics.Collidable {
	return t.objects[i]
}

// Walk calls fn for every node in depth-first order with the node depth. It
// stops early when fn returns false.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	if len(t.nodes) == 0 {
		return
	}

	type entry struct {
		node  int32
		depth int
	}
	stack := []entry{{node: 0}}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[e.node]
		if !fn(n, e.depth) {
			return
		}
		if n.IsLeaf() {
			continue
		}
		stack = append(stack, entry{node: n.Back, depth: e.depth + 1})
		stack = append(stack, entry{node: n.Front, depth: e.depth + 1})
	}
}
