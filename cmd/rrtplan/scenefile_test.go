package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

const validScene = `
strategy          = "star-informed-pruning"
seed              = 7
iterations        = 500
max_branch_length = 0.5
target_bias       = 10
neighbor_radius   = 2.0
start             = [0, 0, 0]
target            = [10, 0, 0]
target_radius     = 0.5

bounds {
  min = [-2, -5, -5]
  max = [12, 5, 5]
}

sphere {
  center = [5, 0, 0]
  radius = 1.5
}

box {
  min = [2, -3, -1]
  max = [3, 3, 1]
}
`

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.hcl")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestLoadSceneFile(t *testing.T) {
	r, err := loadSceneFile(writeScene(t, validScene), golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.iterations, test.ShouldEqual, 500)
	test.That(t, r.tree.Root().Position(), test.ShouldResemble, r3.Vector{})
	test.That(t, r.scene.Spheres, test.ShouldHaveLength, 1)
	test.That(t, r.scene.Boxes, test.ShouldHaveLength, 1)
	test.That(t, r.scene.Target.Center, test.ShouldResemble, r3.Vector{X: 10})
	test.That(t, r.bounds.Max, test.ShouldResemble, r3.Vector{X: 12, Y: 5, Z: 5})
}

func TestLoadSceneFileUnknownStrategy(t *testing.T) {
	contents := `
strategy          = "definitely-not-registered"
start             = [0, 0, 0]
target            = [10, 0, 0]
target_radius     = 0.5
max_branch_length = 1

bounds {
  min = [-2, -5, -5]
  max = [12, 5, 5]
}
`
	_, err := loadSceneFile(writeScene(t, contents), golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "definitely-not-registered")
}

func TestLoadSceneFileBadVector(t *testing.T) {
	contents := `
strategy          = "basic"
start             = [0, 0]
target            = [10, 0, 0]
target_radius     = 0.5
max_branch_length = 1

bounds {
  min = [-2, -5, -5]
  max = [12, 5, 5]
}
`
	_, err := loadSceneFile(writeScene(t, contents), golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "start")
}

func TestLoadSceneFileMissing(t *testing.T) {
	_, err := loadSceneFile(filepath.Join(t.TempDir(), "nope.hcl"), golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}
