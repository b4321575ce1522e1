package rrt

import (
	"github.com/golang/geo/r3"

	"github.com/markus-exler/go-rrt/spatial"
)

// planarSampler drives the phased informed-planar policy: straight shots at
// the target until one is rejected, then sampling restricted to a vertical
// plane through start and target, then to the corresponding horizontal
// plane, then plain target-biased sampling. Each plane phase has the same
// bounded attempt budget.
type planarSampler struct {
	vertical   spatial.Plane
	horizontal spatial.Plane

	// budget is the number of attempts each plane phase may spend.
	budget int

	goingStraight   bool
	verticalTried   int
	horizontalTried int
}

func newPlanarSampler(cfg *Config) *planarSampler {
	start := cfg.Tree.Root().Position()
	span := cfg.Target.Sub(start)
	dir := span
	if n := dir.Norm(); n > 0 {
		dir = dir.Mul(1 / n)
	}
	vNormal, hNormal := spatial.PlaneBasis(dir, spatial.Up)
	return &planarSampler{
		vertical:      spatial.Plane{Origin: start, Normal: vNormal},
		horizontal:    spatial.Plane{Origin: start, Normal: hNormal},
		budget:        int(span.Norm() / cfg.MaxBranchLength * cfg.PlanarFactor),
		goingStraight: true,
	}
}

func (s *planarSampler) next(p *planner) r3.Vector {
	if s.goingStraight {
		return p.cfg.Target
	}
	if p.samples%p.cfg.TargetBias == 0 {
		return p.cfg.Target
	}
	if s.verticalTried < s.budget {
		if s.verticalTried == 0 {
			p.cfg.Tree.Clear()
		}
		s.verticalTried++
		return s.vertical.Project(p.samplePoint())
	}
	if s.horizontalTried < s.budget {
		if s.horizontalTried == 0 && !p.cfg.Tree.HasFoundPath() {
			p.cfg.Tree.Clear()
		}
		s.horizontalTried++
		return s.horizontal.Project(p.samplePoint())
	}
	return p.samplePoint()
}

// observe flips the straight-shot flag the first time a direct attempt at the
// target is rejected.
func (s *planarSampler) observe(_ *planner, res extendResult) {
	if s.goingStraight && res.node == nil {
		s.goingStraight = false
	}
}
