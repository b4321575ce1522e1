package rrt

import "github.com/golang/geo/r3"

// CollisionOracle answers segment queries against the environment. Segments
// are described by a start point, a unit direction, and a length.
type CollisionOracle interface {
	// SegmentBlocked reports whether an obstacle lies strictly within the
	// segment. A hit on the target itself does not count as blocked.
	SegmentBlocked(start, dir r3.Vector, length float64) bool

	// SegmentHitsTarget reports whether the first obstruction along the
	// segment is the target.
	SegmentHitsTarget(start, dir r3.Vector, length float64) bool
}
