package rrt

import "github.com/golang/geo/r3"

// starExtender implements the cost-minimizing attach and rewire policy of the
// star strategies: the new node is attached under the neighbor that yields
// the lowest root cost, then neighbors are re-parented under the new node
// wherever that lowers their own cost.
type starExtender struct{}

func (e starExtender) extendAt(p *planner, pos r3.Vector) extendResult {
	return e.attach(p, pos, true)
}

func (e starExtender) attach(p *planner, pos r3.Vector, checkTarget bool) extendResult {
	t := p.cfg.Tree
	closest := t.ClosestNode(pos)
	dir, length, ok := p.edgeToward(closest, pos)
	if !ok {
		return extendResult{source: closest}
	}
	if p.cfg.Oracle.SegmentBlocked(closest.position, dir, length) {
		return extendResult{source: closest}
	}
	newPos := closest.position.Add(dir.Mul(length))

	// The best-parent pass must run to completion over this neighbor set
	// before any rewiring mutates the tree.
	neighbors := t.NeighborsInRadius(newPos, p.cfg.NeighborRadius)
	minNode, minCost := closest, closest.cost+length
	for _, n := range neighbors {
		if n == closest {
			continue
		}
		delta := newPos.Sub(n.position)
		dist := delta.Norm()
		if dist == 0 {
			continue
		}
		if cost := n.cost + dist; cost < minCost &&
			!p.cfg.Oracle.SegmentBlocked(n.position, delta.Mul(1/dist), dist) {
			minNode, minCost = n, cost
		}
	}

	child := newNode(newPos)
	t.AddChildWithCost(minNode, child)

	for _, n := range neighbors {
		delta := n.position.Sub(newPos)
		dist := delta.Norm()
		if dist == 0 {
			continue
		}
		if child.cost+dist < n.cost &&
			!p.cfg.Oracle.SegmentBlocked(newPos, delta.Mul(1/dist), dist) {
			t.rewire(child, n)
		}
	}

	if checkTarget && !t.HasFoundPath() {
		e.checkTargetHit(p, child, minNode)
	}
	return extendResult{node: child, source: minNode}
}

// checkTargetHit marks the path found when the attached edge terminates at
// the target. If the new node is not exactly at the target position, one more
// extension is forced at that exact position and its result, if any, becomes
// the target node.
func (e starExtender) checkTargetHit(p *planner, child, parent *Node) {
	t := p.cfg.Tree
	delta := child.position.Sub(parent.position)
	dist := delta.Norm()
	if dist == 0 || !p.cfg.Oracle.SegmentHitsTarget(parent.position, delta.Mul(1/dist), dist) {
		return
	}
	if child.position == p.cfg.Target {
		t.setTargetNode(child)
	} else if res := e.attach(p, p.cfg.Target, false); res.node != nil {
		t.setTargetNode(res.node)
	}
	if t.HasFoundPath() && p.logger != nil {
		p.logger.Debugf("path found after %d samples, cost %.3f", p.samples, t.TargetNode().Cost())
	}
}

// pruneOnImprovement prunes the tree whenever the best known path cost
// improves, including the moment the first path is found.
type pruneOnImprovement struct {
	bestCost float64
}

func (pp *pruneOnImprovement) after(p *planner, _ extendResult) {
	t := p.cfg.Tree
	if !t.HasFoundPath() {
		return
	}
	if cost := t.TargetNode().Cost(); cost < pp.bestCost {
		pp.bestCost = cost
		t.Prune()
	}
}
