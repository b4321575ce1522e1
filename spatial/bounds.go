// Package spatial holds the small pieces of three dimensional geometry the
// planner builds on: the axis-aligned search volume, plane bases for the
// planar sampling phases, and the informed sampling region.
package spatial

import (
	"math/rand"

	"github.com/golang/geo/r3"
)

// Bounds is an axis-aligned search volume described by its two extreme corners.
type Bounds struct {
	Min, Max r3.Vector
}

// Valid reports whether every Min component is at most its Max counterpart.
func (b Bounds) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Contains reports whether pt lies within the volume, boundary included.
func (b Bounds) Contains(pt r3.Vector) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Sample draws a point uniformly from the volume.
func (b Bounds) Sample(rnd *rand.Rand) r3.Vector {
	return r3.Vector{
		X: b.Min.X + rnd.Float64()*(b.Max.X-b.Min.X),
		Y: b.Min.Y + rnd.Float64()*(b.Max.Y-b.Min.Y),
		Z: b.Min.Z + rnd.Float64()*(b.Max.Z-b.Min.Z),
	}
}

// Size returns the edge lengths of the volume.
func (b Bounds) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}
