package spatial

import "github.com/golang/geo/r3"

// Spheroid is the prolate spheroid with focal points F1 and F2 containing
// every point whose summed distance to the foci is at most FocalSum. It is
// the region that can still hold a shorter path than one of length FocalSum.
type Spheroid struct {
	F1, F2   r3.Vector
	FocalSum float64
}

// Contains reports whether pt lies inside the region, boundary included.
func (s Spheroid) Contains(pt r3.Vector) bool {
	return pt.Distance(s.F1)+pt.Distance(s.F2) <= s.FocalSum
}
