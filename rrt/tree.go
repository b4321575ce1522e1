package rrt

import "github.com/golang/geo/r3"

// Tree owns the node graph grown during a single search run. It is not safe
// for concurrent use; all growth happens on the calling goroutine.
type Tree struct {
	root       *Node
	targetNode *Node
	found      bool
}

// NewTree creates a tree holding only a root at the given start position.
func NewTree(start r3.Vector) *Tree {
	return &Tree{root: newNode(start)}
}

// Root returns the root node. The root is never removed or re-parented.
func (t *Tree) Root() *Node {
	return t.root
}

// TargetNode returns the node the best known path terminates at, or nil if
// no path has been found yet.
func (t *Tree) TargetNode() *Node {
	return t.targetNode
}

// HasFoundPath reports whether a path to the target has ever been found.
func (t *Tree) HasFoundPath() bool {
	return t.found
}

// setTargetNode records n as the end of the best known path.
func (t *Tree) setTargetNode(n *Node) {
	t.targetNode = n
	t.found = true
}

// ClosestNode returns the node nearest to pt under Euclidean distance.
// Distances are compared squared; ties go to the node reached first in a
// root-first descent over the attachment order.
func (t *Tree) ClosestNode(pt r3.Vector) *Node {
	best := t.root
	bestDist := t.root.position.Sub(pt).Norm2()
	closestIn(t.root, pt, &best, &bestDist)
	return best
}

func closestIn(n *Node, pt r3.Vector, best **Node, bestDist *float64) {
	for _, c := range n.children {
		if d := c.position.Sub(pt).Norm2(); d < *bestDist {
			*best, *bestDist = c, d
		}
		closestIn(c, pt, best, bestDist)
	}
}

// NeighborsInRadius returns every node strictly closer than radius to pt.
// The scan is linear over the whole tree; tree growth is capped by the
// driver's iteration limit, so no spatial index is kept.
func (t *Tree) NeighborsInRadius(pt r3.Vector, radius float64) []*Node {
	var near []*Node
	rsq := radius * radius
	t.root.walk(func(n *Node) {
		if n.position.Sub(pt).Norm2() < rsq {
			near = append(near, n)
		}
	})
	return near
}

// AddChild attaches child under parent. No cost is tracked; the child's cost
// stays 0.
func (t *Tree) AddChild(parent, child *Node) {
	child.parent = parent
	parent.children = append(parent.children, child)
}

// AddChildWithCost attaches child under parent and maintains the accumulated
// path cost of child and, transitively, of any subtree it already carries.
func (t *Tree) AddChildWithCost(parent, child *Node) {
	t.AddChild(parent, child)
	child.recomputeCost()
}

// rewire moves n from under its current parent to under newParent, keeping
// costs consistent across n's subtree.
func (t *Tree) rewire(newParent, n *Node) {
	n.detach()
	t.AddChildWithCost(newParent, n)
}

// Prune removes, top down, every subtree that cannot contain a path shorter
// than the best one found so far. It is a no-op before a path is found.
func (t *Tree) Prune() {
	if !t.found {
		return
	}
	t.pruneChildren(t.root)
}

// pruneChildren evaluates all of n's children before descending, since
// removing a child discards its whole subtree without further checks.
func (t *Tree) pruneChildren(n *Node) {
	keep := n.children[:0]
	for _, c := range n.children {
		detour := c.position.Distance(t.root.position) + c.position.Distance(t.targetNode.position)
		if detour > t.targetNode.cost {
			c.parent = nil
			continue
		}
		keep = append(keep, c)
	}
	n.children = keep
	for _, c := range n.children {
		t.pruneChildren(c)
	}
}

// Clear drops every node but the root.
func (t *Tree) Clear() {
	for _, c := range t.root.children {
		c.parent = nil
	}
	t.root.children = nil
}

// Size returns the number of nodes in the tree, root included.
func (t *Tree) Size() int {
	count := 0
	t.root.walk(func(*Node) { count++ })
	return count
}

// Edge is a parent-to-child segment of the tree, for rendering.
type Edge struct {
	From, To r3.Vector
}

// Edges enumerates every parent/child segment in the tree.
func (t *Tree) Edges() []Edge {
	var edges []Edge
	t.root.walk(func(n *Node) {
		for _, c := range n.children {
			edges = append(edges, Edge{From: n.position, To: c.position})
		}
	})
	return edges
}

// Path returns the found path's positions in root-to-target order, or nil if
// no path has been found.
func (t *Tree) Path() []r3.Vector {
	if !t.found {
		return nil
	}
	path := make([]r3.Vector, 0)
	for n := t.targetNode; n != nil; n = n.parent {
		path = append(path, n.position)
	}
	// reverse the slice
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
