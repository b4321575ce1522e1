// Package driver runs a strategy against a scheduling tick, budgeting a
// bounded number of growth attempts per tick until an iteration cap is hit
// or the run is cancelled.
package driver

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/markus-exler/go-rrt/rrt"
)

const (
	// Growth attempts performed per tick.
	defaultNodesPerTick = 50

	// Total growth attempts before giving up.
	defaultMaxIterations = 20000

	// Interval between ticks, roughly one display frame.
	defaultTickInterval = 16 * time.Millisecond

	// Fraction of the iteration cap between progress log lines.
	defaultLogInterval = 0.1
)

// Runner drives a strategy. All tree growth happens on the runner's
// goroutine; nothing else may mutate the tree while a run is in flight.
type Runner struct {
	strategy rrt.Strategy
	tree     *rrt.Tree
	logger   golog.Logger
	clock    clock.Clock

	nodesPerTick  int
	maxIterations int
	tickInterval  time.Duration
	stopWhenFound bool

	iterations int
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock substitutes the wall clock, usually with a mock in tests.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithNodesPerTick caps growth attempts per tick.
func WithNodesPerTick(n int) Option {
	return func(r *Runner) { r.nodesPerTick = n }
}

// WithMaxIterations caps total growth attempts for the run.
func WithMaxIterations(n int) Option {
	return func(r *Runner) { r.maxIterations = n }
}

// WithTickInterval sets the delay between ticks.
func WithTickInterval(d time.Duration) Option {
	return func(r *Runner) { r.tickInterval = d }
}

// WithStopWhenFound ends the run as soon as a path is found instead of
// spending the remaining iteration budget on improving it.
func WithStopWhenFound() Option {
	return func(r *Runner) { r.stopWhenFound = true }
}

// NewRunner creates a runner over a freshly constructed strategy and its
// tree. A restart or strategy change means building a new tree, strategy and
// runner; a runner cannot be reused.
func NewRunner(strategy rrt.Strategy, tree *rrt.Tree, logger golog.Logger, opts ...Option) *Runner {
	r := &Runner{
		strategy:      strategy,
		tree:          tree,
		logger:        logger,
		clock:         clock.New(),
		nodesPerTick:  defaultNodesPerTick,
		maxIterations: defaultMaxIterations,
		tickInterval:  defaultTickInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Iterations returns the number of growth attempts made so far.
func (r *Runner) Iterations() int {
	return r.iterations
}

// Step performs exactly one growth attempt.
func (r *Runner) Step() *rrt.Node {
	r.iterations++
	return r.strategy.AddOneNode()
}

// Tick spends up to the per-tick budget of growth attempts and reports
// whether the run is finished.
func (r *Runner) Tick() bool {
	for i := 0; i < r.nodesPerTick && r.iterations < r.maxIterations; i++ {
		r.Step()
		if r.stopWhenFound && r.tree.HasFoundPath() {
			return true
		}
	}
	return r.iterations >= r.maxIterations
}

// Run ticks until the run finishes or ctx is done, whichever comes first.
func (r *Runner) Run(ctx context.Context) error {
	finished := make(chan error, 1)
	utils.PanicCapturingGo(func() {
		finished <- r.run(ctx)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-finished:
		return err
	}
}

func (r *Runner) run(ctx context.Context) error {
	ticker := r.clock.Ticker(r.tickInterval)
	defer ticker.Stop()

	logEvery := int(float64(r.maxIterations) * defaultLogInterval)
	if logEvery < 1 {
		logEvery = 1
	}
	lastLogged := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if r.Tick() {
				r.logger.Debugf("run finished after %d iterations, tree size %d, path found: %v",
					r.iterations, r.tree.Size(), r.tree.HasFoundPath())
				return nil
			}
			if r.iterations-lastLogged >= logEvery {
				lastLogged = r.iterations
				r.logger.Debugf("progress: %d%%\ttree size %d\tpath found: %v",
					100*r.iterations/r.maxIterations, r.tree.Size(), r.tree.HasFoundPath())
			}
		}
	}
}
