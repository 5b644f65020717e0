package geom

import "math"

// Cast is the result of SegmentVsBox: the clipped entry/exit parameters
// and the outward normals of the sides hit at entry and exit.
type Cast struct {
	Hit                bool
	TI1, TI2           float64
	NX1, NY1, NX2, NY2 float64
}

// SegmentVsBox clips the segment (x1,y1)->(x2,y2) against b using the
// generalized Liang-Barsky algorithm, starting from the parameter
// interval [ti1, ti2] (pass math.Inf(-1)/math.Inf(1) for an unbounded
// cast). Normals are only meaningful when the caller passes the
// unbounded interval; a bounded interval clips the cast but may report
// a normal for a side the segment never actually reaches within
// [ti1, ti2].
//
// Sides are tested in a fixed order - left, right, top, bottom - so
// that ties between sides resolve deterministically.
func SegmentVsBox(b Box, x1, y1, x2, y2, ti1, ti2 float64) Cast {
	dx, dy := x2-x1, y2-y1

	var nx1, ny1, nx2, ny2 float64

	type side struct{ nx, ny, p, q float64 }
	sides := [4]side{
		{-1, 0, -dx, x1 - b.Left},
		{1, 0, dx, b.Right() - x1},
		{0, -1, -dy, y1 - b.Top},
		{0, 1, dy, b.Bottom() - y1},
	}

	for _, s := range sides {
		if s.p == 0 {
			if s.q <= 0 {
				return Cast{}
			}
			continue
		}

		r := s.q / s.p
		if s.p < 0 {
			if r > ti2 {
				return Cast{}
			}
			if r > ti1 {
				ti1 = r
				nx1, ny1 = s.nx, s.ny
			}
		} else {
			if r < ti1 {
				return Cast{}
			}
			if r < ti2 {
				ti2 = r
				nx2, ny2 = s.nx, s.ny
			}
		}
	}

	return Cast{
		Hit: true,
		TI1: ti1, TI2: ti2,
		NX1: nx1, NY1: ny1,
		NX2: nx2, NY2: ny2,
	}
}

// Unbounded is the default parameter interval for casts that need exact
// entry/exit normals.
var Unbounded = [2]float64{math.Inf(-1), math.Inf(1)}
