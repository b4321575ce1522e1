package rrt

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/markus-exler/go-rrt/spatial"
)

func TestUniformSamplerStaysInBounds(t *testing.T) {
	cfg := testConfig(openOracle{})
	p := newTestPlanner(t, Basic, cfg)
	for i := 0; i < 1000; i++ {
		test.That(t, cfg.Bounds.Contains(p.samplePoint()), test.ShouldBeTrue)
	}
}

func TestTwoDPinsSampleToRootPlane(t *testing.T) {
	cfg := testConfig(openOracle{})
	cfg.Tree = NewTree(r3.Vector{Z: 1.5})
	cfg.TwoD = true
	p := newTestPlanner(t, Basic, cfg)
	for i := 0; i < 100; i++ {
		test.That(t, p.samplePoint().Z, test.ShouldEqual, 1.5)
	}
}

func TestBiasedSamplerHitsTargetEveryNth(t *testing.T) {
	cfg := testConfig(openOracle{})
	cfg.TargetBias = 5
	p := newTestPlanner(t, Informed, cfg)

	targeted := 0
	for i := 1; i <= 20; i++ {
		p.samples = i
		if p.sample.next(p) == cfg.Target {
			targeted++
			test.That(t, i%5, test.ShouldEqual, 0)
		}
	}
	test.That(t, targeted, test.ShouldEqual, 4)
}

func TestStarInformedDropsBiasOnceFound(t *testing.T) {
	cfg := testConfig(openOracle{})
	cfg.TargetBias = 2
	p := newTestPlanner(t, StarInformed, cfg)

	p.samples = 2
	test.That(t, p.sample.next(p), test.ShouldResemble, cfg.Target)

	n := newNode(cfg.Target)
	cfg.Tree.AddChildWithCost(cfg.Tree.Root(), n)
	cfg.Tree.setTargetNode(n)
	for i := 0; i < 50; i++ {
		p.samples = 2 * i
		test.That(t, p.sample.next(p) == cfg.Target, test.ShouldBeFalse)
	}
}

func TestSpheroidSamplerRespectsRegion(t *testing.T) {
	cfg := testConfig(openOracle{})
	p := newTestPlanner(t, StarInformedPruningEllipse, cfg)
	tree := cfg.Tree

	// a found path of cost 12 makes the region a spheroid around the
	// root-target axis
	n := newNode(cfg.Target)
	tree.AddChild(tree.Root(), n)
	n.cost = 12
	tree.setTargetNode(n)

	region := spatial.Spheroid{F1: tree.Root().Position(), F2: cfg.Target, FocalSum: 12}
	for i := 0; i < 500; i++ {
		p.samples = i
		test.That(t, region.Contains(p.sample.next(p)), test.ShouldBeTrue)
	}
}

func TestSpheroidSamplerBiasedBeforeFound(t *testing.T) {
	cfg := testConfig(openOracle{})
	cfg.TargetBias = 3
	p := newTestPlanner(t, StarInformedPruningEllipse, cfg)
	p.samples = 3
	test.That(t, p.sample.next(p), test.ShouldResemble, cfg.Target)
	p.samples = 4
	test.That(t, cfg.Bounds.Contains(p.sample.next(p)), test.ShouldBeTrue)
}
