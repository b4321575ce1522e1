package rrt

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/markus-exler/go-rrt/spatial"
)

// Default values for the strategy tunables.
const (
	// Force the sample to the target position every this many samples.
	defaultTargetBias = 20

	// Radius of the neighborhood used for best-parent search and rewiring.
	defaultNeighborRadius = 3.0

	// Scales the per-plane attempt budget of the planar phases.
	defaultPlanarFactor = 4.0

	// Remove a node once more than this many extensions from it have failed.
	defaultFailureThreshold = 8

	// Cap on rejection-sampling draws for the informed spheroid region.
	defaultSpheroidDraws = 100
)

// Config is the immutable bundle a strategy reads for the lifetime of one
// search run. A fresh Config and Tree are built on every restart or strategy
// change; nothing is carried over between runs.
type Config struct {
	// Tree is the tree the strategy grows.
	Tree *Tree

	// Bounds is the axis-aligned search volume samples are drawn from.
	Bounds spatial.Bounds

	// Oracle answers collision and target queries for candidate edges.
	Oracle CollisionOracle

	// Target is the position the search tries to reach.
	Target r3.Vector

	// MaxBranchLength caps the edge length of a single extension.
	MaxBranchLength float64

	// TwoD pins sampled positions to the root's Z coordinate.
	TwoD bool

	// TargetBias forces every Nth sample to the target. Defaulted if zero.
	TargetBias int

	// NeighborRadius bounds the rewiring neighborhood. Defaulted if zero.
	NeighborRadius float64

	// PlanarFactor scales the planar phase budgets. Defaulted if zero.
	PlanarFactor float64

	// FailureThreshold is the failure count past which a node is removed.
	// Defaulted if zero.
	FailureThreshold int
}

// withDefaults returns a copy of c with zero-valued tunables replaced by the
// package defaults.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.TargetBias == 0 {
		out.TargetBias = defaultTargetBias
	}
	if out.NeighborRadius == 0 {
		out.NeighborRadius = defaultNeighborRadius
	}
	if out.PlanarFactor == 0 {
		out.PlanarFactor = defaultPlanarFactor
	}
	if out.FailureThreshold == 0 {
		out.FailureThreshold = defaultFailureThreshold
	}
	return &out
}

// validate reports every problem with the configuration at once.
func (c *Config) validate() error {
	var errs error
	if c.Tree == nil {
		errs = multierr.Append(errs, errors.New("config needs a tree"))
	}
	if c.Oracle == nil {
		errs = multierr.Append(errs, errors.New("config needs a collision oracle"))
	}
	if !c.Bounds.Valid() {
		errs = multierr.Append(errs, errors.Errorf("bounds min %v exceeds max %v", c.Bounds.Min, c.Bounds.Max))
	}
	if c.MaxBranchLength <= 0 {
		errs = multierr.Append(errs, errors.New("max branch length must be positive"))
	}
	if c.TargetBias < 1 {
		errs = multierr.Append(errs, errors.New("target bias must be at least 1"))
	}
	if c.NeighborRadius <= 0 {
		errs = multierr.Append(errs, errors.New("neighbor radius must be positive"))
	}
	if c.PlanarFactor <= 0 {
		errs = multierr.Append(errs, errors.New("planar factor must be positive"))
	}
	if c.FailureThreshold < 1 {
		errs = multierr.Append(errs, errors.New("failure threshold must be at least 1"))
	}
	if c.Tree != nil && !c.Bounds.Contains(c.Tree.Root().Position()) {
		errs = multierr.Append(errs, errors.New("start position lies outside the search bounds"))
	}
	return errs
}
