// Package aabbworld is a synchronous, two-dimensional axis-aligned
// bounding-box collision engine: a uniform spatial grid broad phase
// feeding a swept-AABB resolver built on the Minkowski difference and a
// generalized Liang-Barsky segment cast (see package geom). The engine
// is a pure geometric service - it stores rectangles and opaque item
// handles, answers region/point/segment queries, and reports collision
// geometry for a requested move; it never interprets what an item is or
// decides how it should respond to a collision.
package aabbworld

import (
	"fmt"
	"math"
	"sort"

	"github.com/akmonengine/aabbworld/geom"
)

// DefaultCellSize is the conventional grid cell size. NewWorld does not
// apply it: the cell size is always passed explicitly, and a
// non-positive value is rejected rather than replaced by this default.
const DefaultCellSize = 64

// World owns the authoritative item -> box mapping and the spatial grid
// that indexes it. I is the opaque item handle type; the engine only
// ever compares and hashes it, never inspects it.
type World[I comparable] struct {
	cellSize float64
	boxes    map[I]geom.Box
	grid     *grid[I]
}

// NewWorld creates a World with the given grid cell size. cellSize must
// be strictly positive.
func NewWorld[I comparable](cellSize float64) (*World[I], error) {
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	return &World[I]{
		cellSize: cellSize,
		boxes:    make(map[I]geom.Box),
		grid:     newGrid[I](cellSize),
	}, nil
}

// Add inserts item at (left, top, width, height). It fails if item is
// already tracked or the dimensions are not strictly positive.
func (w *World[I]) Add(item I, left, top, width, height float64) error {
	if _, exists := w.boxes[item]; exists {
		return fmt.Errorf("add %v: %w", item, ErrItemExists)
	}
	box, err := geom.NewBox(left, top, width, height)
	if err != nil {
		return fmt.Errorf("add %v: %w", item, ErrInvalidDimensions)
	}

	w.boxes[item] = box
	w.grid.insert(item, box)
	return nil
}

// Remove drops item from the world.
func (w *World[I]) Remove(item I) error {
	box, ok := w.boxes[item]
	if !ok {
		return fmt.Errorf("remove %v: %w", item, ErrUnknownItem)
	}

	w.grid.remove(item, box)
	delete(w.boxes, item)
	return nil
}

// GetBox returns item's current box.
func (w *World[I]) GetBox(item I) (left, top, width, height float64, err error) {
	box, ok := w.boxes[item]
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("getBox %v: %w", item, ErrUnknownItem)
	}
	return box.Left, box.Top, box.Width, box.Height, nil
}

// Teleport replaces item's box outright (remove then add), changing
// position and/or dimensions without running collision detection.
func (w *World[I]) Teleport(item I, left, top, width, height float64) error {
	oldBox, ok := w.boxes[item]
	if !ok {
		return fmt.Errorf("teleport %v: %w", item, ErrUnknownItem)
	}
	newBox, err := geom.NewBox(left, top, width, height)
	if err != nil {
		return fmt.Errorf("teleport %v: %w", item, ErrInvalidDimensions)
	}

	w.grid.remove(item, oldBox)
	w.grid.insert(item, newBox)
	w.boxes[item] = newBox
	return nil
}

// Check runs the broad and narrow phases for item attempting to reach
// (futureL, futureT) without moving it, returning every collision
// sorted ascending by time of impact. ignore and filter are both
// optional (ignore may be nil or empty; filter may be nil).
func (w *World[I]) Check(item I, futureL, futureT float64, ignore []I, filter func(I) bool) ([]*Collision[I], error) {
	itemBox, ok := w.boxes[item]
	if !ok {
		return nil, fmt.Errorf("check %v: %w", item, ErrUnknownItem)
	}

	futureBox := geom.Box{Left: futureL, Top: futureT, Width: itemBox.Width, Height: itemBox.Height}
	swept := unionBox(itemBox, futureBox)
	candidates := w.grid.rangeQuery(swept)

	var ignoreSet map[I]struct{}
	if len(ignore) > 0 {
		ignoreSet = make(map[I]struct{}, len(ignore))
		for _, other := range ignore {
			ignoreSet[other] = struct{}{}
		}
	}

	collisions := make([]*Collision[I], 0, len(candidates))
	for other := range candidates {
		if other == item {
			continue
		}
		if _, skip := ignoreSet[other]; skip {
			continue
		}
		if filter != nil && filter(other) {
			continue
		}

		c := newCollision(item, other, itemBox, w.boxes[other], futureL, futureT)
		if c.Resolve() {
			collisions = append(collisions, c)
		}
	}

	sort.Slice(collisions, func(i, j int) bool { return collisions[i].TI < collisions[j].TI })
	return collisions, nil
}

// Move runs Check and then unconditionally relocates item to
// (newL, newT), regardless of whether collisions were found. Callers
// interpret the returned collisions (e.g. via Collision.GetSlide) and
// call Move again to apply a corrected position.
func (w *World[I]) Move(item I, newL, newT float64, ignore []I, filter func(I) bool) ([]*Collision[I], error) {
	collisions, err := w.Check(item, newL, newT, ignore, filter)
	if err != nil {
		return nil, err
	}

	itemBox := w.boxes[item]
	newBox := geom.Box{Left: newL, Top: newT, Width: itemBox.Width, Height: itemBox.Height}
	w.grid.remove(item, itemBox)
	w.grid.insert(item, newBox)
	w.boxes[item] = newBox

	return collisions, nil
}

// Count returns the number of items currently tracked.
func (w *World[I]) Count() int {
	return len(w.boxes)
}

// Bounds returns the union bounding box of every tracked item. ok is
// false when the world is empty.
func (w *World[I]) Bounds() (left, top, width, height float64, ok bool) {
	first := true
	var bounds geom.Box
	for _, box := range w.boxes {
		if first {
			bounds = box
			first = false
			continue
		}
		bounds = unionBox(bounds, box)
	}
	if first {
		return 0, 0, 0, 0, false
	}
	return bounds.Left, bounds.Top, bounds.Width, bounds.Height, true
}

// unionBox returns the smallest box covering both a and b.
func unionBox(a, b geom.Box) geom.Box {
	left := math.Min(a.Left, b.Left)
	top := math.Min(a.Top, b.Top)
	right := math.Max(a.Right(), b.Right())
	bottom := math.Max(a.Bottom(), b.Bottom())
	return geom.Box{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
