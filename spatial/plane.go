package spatial

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Up is the reference axis the planar sampling bases are derived against.
var Up = r3.Vector{Z: 1}

// fallbackAxis substitutes for a degenerate cross product when the direction
// of travel is parallel to the up reference.
var fallbackAxis = r3.Vector{X: 1}

// Plane is an infinite plane through Origin with unit normal Normal.
type Plane struct {
	Origin, Normal r3.Vector
}

// Project returns pt projected orthogonally onto the plane.
func (p Plane) Project(pt r3.Vector) r3.Vector {
	d := pt.Sub(p.Origin).Dot(p.Normal)
	return pt.Sub(p.Normal.Mul(d))
}

// PlaneBasis derives the normals of the vertical and horizontal planes that
// contain the given direction of travel. The vertical plane also contains up;
// the horizontal plane is perpendicular to it.
func PlaneBasis(dir, up r3.Vector) (vertical, horizontal r3.Vector) {
	vertical = dir.Cross(up)
	if scalar.EqualWithinAbs(vertical.Norm(), 0, 1e-9) {
		vertical = fallbackAxis
	}
	vertical = vertical.Normalize()
	horizontal = dir.Cross(vertical)
	if scalar.EqualWithinAbs(horizontal.Norm(), 0, 1e-9) {
		horizontal = up
	}
	horizontal = horizontal.Normalize()
	return vertical, horizontal
}
