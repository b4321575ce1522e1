package rrt

import (
	"math"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// StrategyName selects one of the registered growth strategies.
type StrategyName string

// The registered strategies.
const (
	Basic                      StrategyName = "basic"
	Informed                   StrategyName = "informed"
	InformedReduction          StrategyName = "informed-reduction"
	Star                       StrategyName = "star"
	StarInformed               StrategyName = "star-informed"
	StarInformedPruning        StrategyName = "star-informed-pruning"
	StarInformedPruningEllipse StrategyName = "star-informed-pruning-ellipse"
	InformedPlanar             StrategyName = "informed-planar"
	InformedPlanarReduction    StrategyName = "informed-planar-reduction"
)

// Strategies lists every registered strategy name.
func Strategies() []StrategyName {
	return []StrategyName{
		Basic,
		Informed,
		InformedReduction,
		Star,
		StarInformed,
		StarInformedPruning,
		StarInformedPruningEllipse,
		InformedPlanar,
		InformedPlanarReduction,
	}
}

// Strategy grows the tree by one node per call.
type Strategy interface {
	// AddOneNode attempts one growth step and returns the attached node, or
	// nil when the sample was rejected. Rejection is a normal outcome, not
	// an error.
	AddOneNode() *Node
}

// extendResult describes one extension attempt. node is nil when the attempt
// was rejected; source is the tree node the attempt extended from.
type extendResult struct {
	node   *Node
	source *Node
}

// samplePolicy proposes candidate positions and may react to the outcome of
// the attempt its proposal produced.
type samplePolicy interface {
	next(p *planner) r3.Vector
	observe(p *planner, res extendResult)
}

// extendPolicy turns a candidate position into a tree mutation.
type extendPolicy interface {
	extendAt(p *planner, pos r3.Vector) extendResult
}

// postPolicy runs after every attempt, successful or not.
type postPolicy interface {
	after(p *planner, res extendResult)
}

// planner is the single concrete Strategy. The nine registered variants
// differ only in the sample, extend and post policies they are assembled
// from.
type planner struct {
	cfg    *Config
	logger golog.Logger
	rnd    *rand.Rand

	sample samplePolicy
	extend extendPolicy
	post   postPolicy

	// samples counts AddOneNode calls within this run.
	samples int
}

// NewStrategy assembles the named strategy over cfg. Unrecognized names and
// invalid configurations are construction errors; afterwards no call can
// fail.
func NewStrategy(name StrategyName, cfg *Config, logger golog.Logger) (Strategy, error) {
	//nolint:gosec
	return NewStrategyWithSeed(name, cfg, rand.New(rand.NewSource(1)), logger)
}

// NewStrategyWithSeed is NewStrategy with a caller-controlled random source.
func NewStrategyWithSeed(name StrategyName, cfg *Config, rnd *rand.Rand, logger golog.Logger) (Strategy, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	p := &planner{cfg: cfg, logger: logger, rnd: rnd}
	switch name {
	case Basic:
		p.sample = uniformSampler{}
		p.extend = nearestExtender{}
		p.post = nopPolicy{}
	case Informed:
		p.sample = &biasedSampler{}
		p.extend = nearestExtender{}
		p.post = nopPolicy{}
	case InformedReduction:
		p.sample = &biasedSampler{}
		p.extend = nearestExtender{}
		p.post = failureReducer{}
	case Star:
		p.sample = uniformSampler{}
		p.extend = starExtender{}
		p.post = nopPolicy{}
	case StarInformed:
		p.sample = &biasedSampler{untilFound: true}
		p.extend = starExtender{}
		p.post = nopPolicy{}
	case StarInformedPruning:
		p.sample = &biasedSampler{untilFound: true}
		p.extend = starExtender{}
		p.post = &pruneOnImprovement{bestCost: math.Inf(1)}
	case StarInformedPruningEllipse:
		p.sample = spheroidSampler{}
		p.extend = starExtender{}
		p.post = &pruneOnImprovement{bestCost: math.Inf(1)}
	case InformedPlanar:
		p.sample = newPlanarSampler(cfg)
		p.extend = nearestExtender{}
		p.post = nopPolicy{}
	case InformedPlanarReduction:
		p.sample = newPlanarSampler(cfg)
		p.extend = nearestExtender{}
		p.post = failureReducer{}
	default:
		return nil, newUnknownStrategyError(name)
	}
	return p, nil
}

// AddOneNode implements Strategy.
func (p *planner) AddOneNode() *Node {
	p.samples++
	pos := p.sample.next(p)
	res := p.extend.extendAt(p, pos)
	p.sample.observe(p, res)
	p.post.after(p, res)
	return res.node
}

// edgeToward computes the unit direction and bounded length of an extension
// from n toward pos. ok is false when the sample coincides with n.
func (p *planner) edgeToward(n *Node, pos r3.Vector) (dir r3.Vector, length float64, ok bool) {
	delta := pos.Sub(n.position)
	dist := delta.Norm()
	if dist == 0 {
		return r3.Vector{}, 0, false
	}
	return delta.Mul(1 / dist), math.Min(p.cfg.MaxBranchLength, dist), true
}

// nearestExtender attaches the bounded extension toward the sample under the
// nearest tree node.
type nearestExtender struct{}

func (nearestExtender) extendAt(p *planner, pos r3.Vector) extendResult {
	t := p.cfg.Tree
	nearest := t.ClosestNode(pos)
	dir, length, ok := p.edgeToward(nearest, pos)
	if !ok {
		return extendResult{source: nearest}
	}
	if p.cfg.Oracle.SegmentBlocked(nearest.position, dir, length) {
		return extendResult{source: nearest}
	}
	child := newNode(nearest.position.Add(dir.Mul(length)))
	t.AddChild(nearest, child)
	if !t.HasFoundPath() && p.cfg.Oracle.SegmentHitsTarget(nearest.position, dir, length) {
		t.setTargetNode(child)
		if p.logger != nil {
			p.logger.Debugf("path found after %d samples, tree size %d", p.samples, t.Size())
		}
	}
	return extendResult{node: child, source: nearest}
}

// nopPolicy is the post policy of strategies without pruning or reduction.
type nopPolicy struct{}

func (nopPolicy) after(*planner, extendResult) {}
