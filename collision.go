package aabbworld

import (
	"math"

	"github.com/akmonengine/aabbworld/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Collision binds one moving item to one stationary item it might hit
// while attempting a displacement, plus - once Resolve has run - the
// contact geometry needed to build a response.
//
// A Collision is a plain value: derived responses (GetTouch, GetSlide,
// GetBounce) are pure functions of its fields, not stateful methods on a
// live object. It is only valid until the next mutation of either item
// in the owning World.
type Collision[I comparable] struct {
	Item, Other       I
	ItemBox, OtherBox geom.Box
	FutureL, FutureT  float64
	Vx, Vy            float64

	resolved       bool
	IsIntersection bool
	TI             float64
	NX, NY         int
}

func newCollision[I comparable](item, other I, itemBox, otherBox geom.Box, futureL, futureT float64) *Collision[I] {
	return &Collision[I]{
		Item:     item,
		Other:    other,
		ItemBox:  itemBox,
		OtherBox: otherBox,
		FutureL:  futureL,
		FutureT:  futureT,
		Vx:       futureL - itemBox.Left,
		Vy:       futureT - itemBox.Top,
	}
}

// Resolve classifies the collision. It returns false when the moving box
// never comes within the other box along the attempted displacement, in
// which case the Collision carries no further information.
func (c *Collision[I]) Resolve() bool {
	diff := geom.MinkowskiDiff(c.ItemBox, c.OtherBox)

	if geom.ContainsPoint(diff, 0, 0) {
		px, py := geom.NearestCorner(diff, 0, 0)
		wi := math.Min(c.ItemBox.Width, math.Abs(px))
		hi := math.Min(c.ItemBox.Height, math.Abs(py))

		c.IsIntersection = true
		c.TI = -(wi * hi)
		c.NX, c.NY = 0, 0
		c.resolved = true
		return true
	}

	cast := geom.SegmentVsBox(diff, 0, 0, c.Vx, c.Vy, math.Inf(-1), math.Inf(1))
	if cast.Hit && cast.TI1 < 1 && (cast.TI1 > 0 || (cast.TI1 == 0 && cast.TI2 > 0)) {
		c.IsIntersection = false
		c.TI = cast.TI1
		c.NX, c.NY = int(cast.NX1), int(cast.NY1)
		c.resolved = true
		return true
	}

	return false
}

// GetTouch returns the position at which the moving box first touches
// the other box, and the contact normal at that position.
func (c *Collision[I]) GetTouch() (tx, ty float64, nx, ny int, err error) {
	if !c.resolved {
		return 0, 0, 0, 0, ErrNotResolved
	}

	if !c.IsIntersection {
		tx = c.ItemBox.Left + c.Vx*c.TI
		ty = c.ItemBox.Top + c.Vy*c.TI
		return tx, ty, c.NX, c.NY, nil
	}

	if c.Vx == 0 && c.Vy == 0 {
		diff := geom.MinkowskiDiff(c.ItemBox, c.OtherBox)
		px, py := geom.NearestCorner(diff, 0, 0)
		if math.Abs(px) < math.Abs(py) {
			py = 0
		} else {
			px = 0
		}
		return c.ItemBox.Left + px, c.ItemBox.Top + py, signi(px), signi(py), nil
	}

	diff := geom.MinkowskiDiff(c.ItemBox, c.OtherBox)
	cast := geom.SegmentVsBox(diff, 0, 0, c.Vx, c.Vy, math.Inf(-1), 1)
	if !cast.Hit {
		return c.ItemBox.Left, c.ItemBox.Top, 0, 0, nil
	}

	touch := mgl64.Vec2{c.ItemBox.Left, c.ItemBox.Top}.Add(mgl64.Vec2{c.Vx, c.Vy}.Mul(cast.TI1))
	return touch.X(), touch.Y(), int(cast.NX2), int(cast.NY2), nil
}

// GetSlide returns the touch position and the corrected position that
// keeps the component of the target position perpendicular to the
// contact normal.
func (c *Collision[I]) GetSlide() (tx, ty, sx, sy float64, nx, ny int, err error) {
	tx, ty, nx, ny, err = c.GetTouch()
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}

	sx, sy = tx, ty
	if nx != 0 {
		sy = c.FutureT
	} else if ny != 0 {
		sx = c.FutureL
	}
	return tx, ty, sx, sy, nx, ny, nil
}

// GetBounce returns the touch position and the position reflecting the
// remaining displacement across the contact normal's axis.
func (c *Collision[I]) GetBounce() (tx, ty, bx, by float64, nx, ny int, err error) {
	tx, ty, nx, ny, err = c.GetTouch()
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}

	if c.Vx == 0 && c.Vy == 0 {
		return tx, ty, tx, ty, nx, ny, nil
	}

	remaining := mgl64.Vec2{c.FutureL - tx, c.FutureT - ty}
	if nx != 0 {
		remaining[0] = -remaining[0]
	}
	if ny != 0 {
		remaining[1] = -remaining[1]
	}

	bounce := mgl64.Vec2{tx, ty}.Add(remaining)
	return tx, ty, bounce.X(), bounce.Y(), nx, ny, nil
}

func signi(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
