// Package scene is a reference environment for the planner: sphere and
// axis-aligned box obstacles plus a spherical target region. It implements
// the segment queries the planner consumes by resolving the first hit along
// the segment, so a target shadowed by an obstacle does not count as reached.
package scene

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Sphere is a ball centered at Center.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// Box is an axis-aligned box between its two extreme corners.
type Box struct {
	Min, Max r3.Vector
}

// Scene bundles the target region with the obstacle set.
type Scene struct {
	Target  Sphere
	Spheres []Sphere
	Boxes   []Box
}

// SegmentBlocked reports whether any obstacle lies strictly within the
// segment. The target region is not an obstacle.
func (s *Scene) SegmentBlocked(start, dir r3.Vector, length float64) bool {
	_, hit := s.firstObstacle(start, dir, length)
	return hit
}

// SegmentHitsTarget reports whether the segment reaches the target with no
// obstacle in front of it.
func (s *Scene) SegmentHitsTarget(start, dir r3.Vector, length float64) bool {
	tTarget, ok := s.Target.intersect(start, dir, length)
	if !ok {
		return false
	}
	if tObstacle, hit := s.firstObstacle(start, dir, length); hit && tObstacle < tTarget {
		return false
	}
	return true
}

// firstObstacle returns the entry distance of the nearest obstacle hit.
func (s *Scene) firstObstacle(start, dir r3.Vector, length float64) (float64, bool) {
	first, found := 0.0, false
	for _, sp := range s.Spheres {
		if t, ok := sp.intersect(start, dir, length); ok && (!found || t < first) {
			first, found = t, true
		}
	}
	for _, b := range s.Boxes {
		if t, ok := b.intersect(start, dir, length); ok && (!found || t < first) {
			first, found = t, true
		}
	}
	return first, found
}

// intersect returns the entry distance of the segment into the sphere. A
// segment starting inside the sphere hits at distance 0.
func (sp Sphere) intersect(start, dir r3.Vector, length float64) (float64, bool) {
	oc := start.Sub(sp.Center)
	b := oc.Dot(dir)
	disc := b*b - (oc.Norm2() - sp.Radius*sp.Radius)
	if disc < 0 {
		return 0, false
	}
	root := math.Sqrt(disc)
	enter := -b - root
	if enter < 0 {
		// either behind the segment or the segment starts inside
		if -b+root <= 0 {
			return 0, false
		}
		return 0, true
	}
	if enter >= length {
		return 0, false
	}
	return enter, true
}

// intersect returns the entry distance of the segment into the box, using the
// slab test per axis. A segment starting inside the box hits at distance 0.
func (b Box) intersect(start, dir r3.Vector, length float64) (float64, bool) {
	tmin, tmax := 0.0, length
	for _, slab := range [3][3]float64{
		{start.X, dir.X, 0},
		{start.Y, dir.Y, 1},
		{start.Z, dir.Z, 2},
	} {
		origin, delta := slab[0], slab[1]
		lo, hi := b.axis(int(slab[2]))
		if scalar.EqualWithinAbs(delta, 0, 1e-12) {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - origin) / delta
		t2 := (hi - origin) / delta
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin >= length {
		return 0, false
	}
	return tmin, true
}

func (b Box) axis(i int) (float64, float64) {
	switch i {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}
