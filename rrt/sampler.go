package rrt

import (
	"github.com/golang/geo/r3"

	"github.com/markus-exler/go-rrt/spatial"
)

// samplePoint draws uniformly from the search volume, pinned to the root's Z
// coordinate in 2D mode.
func (p *planner) samplePoint() r3.Vector {
	pt := p.cfg.Bounds.Sample(p.rnd)
	if p.cfg.TwoD {
		pt.Z = p.cfg.Tree.Root().position.Z
	}
	return pt
}

// nopObserver is embedded by sample policies that ignore attempt outcomes.
type nopObserver struct{}

func (nopObserver) observe(*planner, extendResult) {}

// uniformSampler draws every sample uniformly from the search volume.
type uniformSampler struct{ nopObserver }

func (uniformSampler) next(p *planner) r3.Vector {
	return p.samplePoint()
}

// biasedSampler forces every TargetBias-th sample to the target position.
// With untilFound set, the bias is dropped once a path exists.
type biasedSampler struct {
	nopObserver
	untilFound bool
}

func (s *biasedSampler) next(p *planner) r3.Vector {
	if s.untilFound && p.cfg.Tree.HasFoundPath() {
		return p.samplePoint()
	}
	if p.samples%p.cfg.TargetBias == 0 {
		return p.cfg.Target
	}
	return p.samplePoint()
}

// spheroidSampler is target biased before a path exists. Once one does, it
// rejection-samples the prolate spheroid whose focal sum is the current best
// path cost, so no sample that cannot improve the path reaches the attach
// step.
type spheroidSampler struct{ nopObserver }

func (spheroidSampler) next(p *planner) r3.Vector {
	t := p.cfg.Tree
	if !t.HasFoundPath() {
		if p.samples%p.cfg.TargetBias == 0 {
			return p.cfg.Target
		}
		return p.samplePoint()
	}
	region := spatial.Spheroid{
		F1:       t.Root().position,
		F2:       p.cfg.Target,
		FocalSum: t.TargetNode().Cost(),
	}
	for i := 0; i < defaultSpheroidDraws; i++ {
		if pt := p.samplePoint(); region.Contains(pt) {
			return pt
		}
	}
	// The target itself always lies inside the region.
	return p.cfg.Target
}
