// Package geom implements the pure geometry kernel the collision engine
// is built on: axis-aligned boxes, point containment, overlap tests and
// the Minkowski difference that reduces swept-box collision to a
// segment-vs-box cast.
package geom

import (
	"errors"
	"math"
)

// Delta is the tolerance used by ContainsPoint to decide whether a point
// is strictly interior to a box. It is not used anywhere else; rect-rect
// overlap and cell membership use exact comparisons.
const Delta = 1e-5

// ErrInvalidDimensions is returned by NewBox when width or height is not
// strictly positive.
var ErrInvalidDimensions = errors.New("geom: width and height must be strictly positive")

// Box is an axis-aligned rectangle covering [Left, Left+Width) x
// [Top, Top+Height) under the +x-right, +y-down screen convention.
type Box struct {
	Left, Top, Width, Height float64
}

// NewBox builds a Box, rejecting non-positive dimensions.
func NewBox(left, top, width, height float64) (Box, error) {
	if width <= 0 || height <= 0 {
		return Box{}, ErrInvalidDimensions
	}
	return Box{Left: left, Top: top, Width: width, Height: height}, nil
}

// Right returns the box's right edge (Left + Width).
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the box's bottom edge (Top + Height).
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Translated returns a copy of b moved so its top-left corner is (left, top).
func (b Box) Translated(left, top float64) Box {
	b.Left, b.Top = left, top
	return b
}

// NearestCorner returns the corner of b nearest to (x, y): the left/right
// edge nearer x and the top/bottom edge nearer y. On an exact tie the
// second candidate (the right/bottom side) wins; this tie-break is
// load-bearing for the minimum-translation resolution of stationary
// overlaps and must not be changed.
func NearestCorner(b Box, x, y float64) (cx, cy float64) {
	return nearest(x, b.Left, b.Right()), nearest(y, b.Top, b.Bottom())
}

func nearest(v, a, b float64) float64 {
	if math.Abs(v-a) < math.Abs(v-b) {
		return a
	}
	return b
}

// ContainsPoint reports whether (x, y) lies strictly inside b, with
// tolerance Delta on all four sides. Boundary points are not contained.
func ContainsPoint(b Box, x, y float64) bool {
	return x-b.Left > Delta && y-b.Top > Delta &&
		b.Right()-x > Delta && b.Bottom()-y > Delta
}

// Overlaps reports whether a and b overlap with positive area. No
// tolerance is applied: boxes that merely touch do not overlap.
func Overlaps(a, b Box) bool {
	return a.Left < b.Right() && b.Left < a.Right() &&
		a.Top < b.Bottom() && b.Top < a.Bottom()
}

// MinkowskiDiff returns the Minkowski difference of a and b: the box
// whose interior contains the origin iff a and b overlap, and such that
// a segment cast from the origin along a's displacement intersects this
// box iff a, swept by that displacement, intersects b.
func MinkowskiDiff(a, b Box) Box {
	return Box{
		Left:   b.Left - a.Left - a.Width,
		Top:    b.Top - a.Top - a.Height,
		Width:  a.Width + b.Width,
		Height: a.Height + b.Height,
	}
}
