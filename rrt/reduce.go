package rrt

// failureReducer removes nodes whose extension attempts keep failing. Every
// rejection increments the source node's failure counter; past the threshold
// the node is detached and the failure cascades to its former parent, letting
// unproductive chains collapse back toward the root.
type failureReducer struct{}

func (failureReducer) after(p *planner, res extendResult) {
	if res.node != nil || res.source == nil {
		return
	}
	removeOnFailure(p.cfg, res.source)
}

func removeOnFailure(cfg *Config, n *Node) {
	n.failures++
	if n.failures <= cfg.FailureThreshold || n.parent == nil {
		return
	}
	parent := n.parent
	n.detach()
	removeOnFailure(cfg, parent)
}
