package main

import (
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/markus-exler/go-rrt/rrt"
	"github.com/markus-exler/go-rrt/scene"
	"github.com/markus-exler/go-rrt/spatial"
)

// sceneFile is the HCL schema of a run description: the environment, the
// strategy selection, and its tunables. Optional attributes default on the
// rrt side.
type sceneFile struct {
	Strategy        string    `hcl:"strategy"`
	Start           []float64 `hcl:"start"`
	Target          []float64 `hcl:"target"`
	TargetRadius    float64   `hcl:"target_radius"`
	MaxBranchLength float64   `hcl:"max_branch_length"`

	Seed             *int64   `hcl:"seed"`
	Iterations       *int     `hcl:"iterations"`
	TargetBias       *int     `hcl:"target_bias"`
	NeighborRadius   *float64 `hcl:"neighbor_radius"`
	PlanarFactor     *float64 `hcl:"planar_factor"`
	FailureThreshold *int     `hcl:"failure_threshold"`
	TwoD             *bool    `hcl:"two_d"`

	Bounds  boundsBlock   `hcl:"bounds,block"`
	Spheres []sphereBlock `hcl:"sphere,block"`
	Boxes   []boxBlock    `hcl:"box,block"`
}

type boundsBlock struct {
	Min []float64 `hcl:"min"`
	Max []float64 `hcl:"max"`
}

type sphereBlock struct {
	Center []float64 `hcl:"center"`
	Radius float64   `hcl:"radius"`
}

type boxBlock struct {
	Min []float64 `hcl:"min"`
	Max []float64 `hcl:"max"`
}

// run is everything main needs to execute one search.
type run struct {
	strategy   rrt.Strategy
	tree       *rrt.Tree
	scene      *scene.Scene
	bounds     spatial.Bounds
	iterations int
}

func loadSceneFile(path string, logger golog.Logger) (*run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing scene file %s: %s", path, diags.Error())
	}
	var sf sceneFile
	if diags := gohcl.DecodeBody(file.Body, nil, &sf); diags.HasErrors() {
		return nil, errors.Errorf("decoding scene file %s: %s", path, diags.Error())
	}
	return sf.build(logger)
}

func (sf *sceneFile) build(logger golog.Logger) (*run, error) {
	start, err := vector(sf.Start, "start")
	if err != nil {
		return nil, err
	}
	target, err := vector(sf.Target, "target")
	if err != nil {
		return nil, err
	}
	boundsMin, err := vector(sf.Bounds.Min, "bounds.min")
	if err != nil {
		return nil, err
	}
	boundsMax, err := vector(sf.Bounds.Max, "bounds.max")
	if err != nil {
		return nil, err
	}

	sc := &scene.Scene{Target: scene.Sphere{Center: target, Radius: sf.TargetRadius}}
	for _, sp := range sf.Spheres {
		center, err := vector(sp.Center, "sphere.center")
		if err != nil {
			return nil, err
		}
		sc.Spheres = append(sc.Spheres, scene.Sphere{Center: center, Radius: sp.Radius})
	}
	for _, b := range sf.Boxes {
		lo, err := vector(b.Min, "box.min")
		if err != nil {
			return nil, err
		}
		hi, err := vector(b.Max, "box.max")
		if err != nil {
			return nil, err
		}
		sc.Boxes = append(sc.Boxes, scene.Box{Min: lo, Max: hi})
	}

	tree := rrt.NewTree(start)
	cfg := &rrt.Config{
		Tree:            tree,
		Bounds:          spatial.Bounds{Min: boundsMin, Max: boundsMax},
		Oracle:          sc,
		Target:          target,
		MaxBranchLength: sf.MaxBranchLength,
	}
	if sf.TargetBias != nil {
		cfg.TargetBias = *sf.TargetBias
	}
	if sf.NeighborRadius != nil {
		cfg.NeighborRadius = *sf.NeighborRadius
	}
	if sf.PlanarFactor != nil {
		cfg.PlanarFactor = *sf.PlanarFactor
	}
	if sf.FailureThreshold != nil {
		cfg.FailureThreshold = *sf.FailureThreshold
	}
	if sf.TwoD != nil {
		cfg.TwoD = *sf.TwoD
	}

	seed := int64(1)
	if sf.Seed != nil {
		seed = *sf.Seed
	}
	//nolint:gosec
	strategy, err := rrt.NewStrategyWithSeed(rrt.StrategyName(sf.Strategy), cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return nil, err
	}

	iterations := 0
	if sf.Iterations != nil {
		iterations = *sf.Iterations
	}
	return &run{
		strategy:   strategy,
		tree:       tree,
		scene:      sc,
		bounds:     cfg.Bounds,
		iterations: iterations,
	}, nil
}

func vector(raw []float64, name string) (r3.Vector, error) {
	if len(raw) != 3 {
		return r3.Vector{}, errors.Errorf("%s must have exactly 3 components, got %d", name, len(raw))
	}
	return r3.Vector{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}
