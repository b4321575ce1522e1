// Package rrt grows a tree of sampled points through bounded space to find a
// collision-free path from a start position to a target, using variants of
// the rapidly-exploring random tree family of algorithms.
package rrt

import "github.com/golang/geo/r3"

// Node is a collision-verified waypoint in the search tree. A node owns its
// children; the parent link is a weak back-reference and is nil only for the
// tree root.
type Node struct {
	position r3.Vector
	parent   *Node
	children []*Node
	cost     float64
	failures int
}

func newNode(position r3.Vector) *Node {
	return &Node{position: position}
}

// Position returns the point this node was sampled at.
func (n *Node) Position() r3.Vector {
	return n.position
}

// Parent returns the node this node is attached under, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the nodes attached under this node, in attachment order.
// The returned slice is owned by the node and must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Cost returns the accumulated edge length from the root to this node. It is
// only maintained by the cost-tracking attach operations and is 0 otherwise.
func (n *Node) Cost() float64 {
	return n.cost
}

// Failures returns how many extension attempts from this node were rejected.
func (n *Node) Failures() int {
	return n.failures
}

// detach removes n from its parent's children and clears the back-reference.
// The subtree under n stays intact but is no longer reachable from the root.
func (n *Node) detach() {
	parent := n.parent
	if parent == nil {
		return
	}
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// walk visits n and its subtree depth-first in attachment order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.walk(visit)
	}
}

// recomputeCost restores the cost invariant for n and its whole subtree after
// n gained a new parent.
func (n *Node) recomputeCost() {
	n.cost = n.parent.cost + n.position.Distance(n.parent.position)
	for _, c := range n.children {
		c.recomputeCost()
	}
}
