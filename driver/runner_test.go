package driver

import (
	"context"
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/markus-exler/go-rrt/rrt"
	"github.com/markus-exler/go-rrt/scene"
	"github.com/markus-exler/go-rrt/spatial"
)

func testStrategy(t *testing.T, tree *rrt.Tree) rrt.Strategy {
	t.Helper()
	sc := &scene.Scene{Target: scene.Sphere{Center: r3.Vector{X: 10}, Radius: 1}}
	cfg := &rrt.Config{
		Tree:            tree,
		Bounds:          spatial.Bounds{Min: r3.Vector{X: -2, Y: -3, Z: -3}, Max: r3.Vector{X: 12, Y: 3, Z: 3}},
		Oracle:          sc,
		Target:          r3.Vector{X: 10},
		MaxBranchLength: 1,
	}
	s, err := rrt.NewStrategy(rrt.Informed, cfg, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return s
}

func TestStepCountsIterations(t *testing.T) {
	tree := rrt.NewTree(r3.Vector{})
	r := NewRunner(testStrategy(t, tree), tree, golog.NewTestLogger(t))
	for i := 0; i < 5; i++ {
		r.Step()
	}
	test.That(t, r.Iterations(), test.ShouldEqual, 5)
}

func TestTickBudget(t *testing.T) {
	tree := rrt.NewTree(r3.Vector{})
	r := NewRunner(testStrategy(t, tree), tree, golog.NewTestLogger(t),
		WithNodesPerTick(7), WithMaxIterations(20))

	test.That(t, r.Tick(), test.ShouldBeFalse)
	test.That(t, r.Iterations(), test.ShouldEqual, 7)
	test.That(t, r.Tick(), test.ShouldBeFalse)
	test.That(t, r.Tick(), test.ShouldBeTrue)
	// the cap bounds the third tick's budget
	test.That(t, r.Iterations(), test.ShouldEqual, 20)
}

func TestRunStopsAtIterationCap(t *testing.T) {
	tree := rrt.NewTree(r3.Vector{})
	r := NewRunner(testStrategy(t, tree), tree, golog.NewTestLogger(t),
		WithMaxIterations(500), WithTickInterval(time.Millisecond))

	err := r.Run(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Iterations(), test.ShouldEqual, 500)
	test.That(t, tree.Size(), test.ShouldBeGreaterThan, 1)
}

func TestRunHonorsCancellation(t *testing.T) {
	tree := rrt.NewTree(r3.Vector{})
	mock := clk.NewMock()
	r := NewRunner(testStrategy(t, tree), tree, golog.NewTestLogger(t),
		WithClock(mock), WithTickInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx)
	test.That(t, err, test.ShouldBeError, context.Canceled)
	test.That(t, r.Iterations(), test.ShouldEqual, 0)
}

func TestRunStopsWhenFound(t *testing.T) {
	tree := rrt.NewTree(r3.Vector{})
	r := NewRunner(testStrategy(t, tree), tree, golog.NewTestLogger(t),
		WithMaxIterations(50000), WithTickInterval(time.Millisecond),
		WithNodesPerTick(500), WithStopWhenFound())

	err := r.Run(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.HasFoundPath(), test.ShouldBeTrue)
	test.That(t, r.Iterations(), test.ShouldBeLessThan, 50000)
}
