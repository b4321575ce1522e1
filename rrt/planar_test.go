package rrt

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func planarTestPlanner(t *testing.T, oracle CollisionOracle) (*planner, *planarSampler) {
	t.Helper()
	cfg := testConfig(oracle)
	cfg.PlanarFactor = 1 // budget = dist(root,target)/maxBranchLength = 10
	p := newTestPlanner(t, InformedPlanar, cfg)
	return p, p.sample.(*planarSampler)
}

func TestPlanarGoesStraightFirst(t *testing.T) {
	p, s := planarTestPlanner(t, openOracle{})
	test.That(t, s.budget, test.ShouldEqual, 10)

	// while straight shots keep landing, the sample stays on the target
	for i := 0; i < 5; i++ {
		test.That(t, p.AddOneNode(), test.ShouldNotBeNil)
		test.That(t, s.goingStraight, test.ShouldBeTrue)
	}
	// the chain marches along the start-target axis
	last := p.cfg.Tree.ClosestNode(p.cfg.Target)
	test.That(t, last.Position().Distance(r3.Vector{X: 5}), test.ShouldBeLessThan, 1e-9)
}

func TestPlanarFallsBackToVerticalPlane(t *testing.T) {
	p, s := planarTestPlanner(t, blockedOracle{})

	// first attempt is the rejected straight shot
	test.That(t, p.AddOneNode(), test.ShouldBeNil)
	test.That(t, s.goingStraight, test.ShouldBeFalse)

	// the next non-bias sample lies on the vertical plane through start and
	// target, and the tree was cleared on phase entry
	p.cfg.Tree.AddChild(p.cfg.Tree.Root(), newNode(r3.Vector{X: 1}))
	p.samples = 1
	pos := s.next(p)
	test.That(t, p.cfg.Tree.Size(), test.ShouldEqual, 1)
	test.That(t, pos.Sub(s.vertical.Origin).Dot(s.vertical.Normal), test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, s.verticalTried, test.ShouldEqual, 1)
}

func TestPlanarPhaseProgression(t *testing.T) {
	p, s := planarTestPlanner(t, blockedOracle{})
	test.That(t, p.AddOneNode(), test.ShouldBeNil)

	// burning the vertical budget moves the sampler to the horizontal plane
	p.samples = 1
	for i := 0; i < s.budget; i++ {
		pos := s.next(p)
		test.That(t, pos.Sub(s.vertical.Origin).Dot(s.vertical.Normal), test.ShouldAlmostEqual, 0, 1e-9)
	}
	for i := 0; i < s.budget; i++ {
		pos := s.next(p)
		test.That(t, pos.Sub(s.horizontal.Origin).Dot(s.horizontal.Normal), test.ShouldAlmostEqual, 0, 1e-9)
	}
	test.That(t, s.horizontalTried, test.ShouldEqual, s.budget)

	// with both budgets spent it samples the whole volume again
	pos := s.next(p)
	test.That(t, p.cfg.Bounds.Contains(pos), test.ShouldBeTrue)

	// and bias multiples still force the target throughout
	p.samples = p.cfg.TargetBias
	test.That(t, s.next(p), test.ShouldResemble, p.cfg.Target)
}

func TestPlanarBudgetScalesWithFactor(t *testing.T) {
	cfg := testConfig(openOracle{})
	cfg.PlanarFactor = 3
	p := newTestPlanner(t, InformedPlanarReduction, cfg)
	s := p.sample.(*planarSampler)
	test.That(t, s.budget, test.ShouldEqual, 30)
}
