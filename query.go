package aabbworld

import (
	"fmt"
	"math"
	"sort"

	"github.com/akmonengine/aabbworld/geom"
)

// SegmentHit is one candidate returned by QuerySegmentWithCoords: the
// item hit, its clipped entry/exit parameters along the queried
// segment, and the corresponding world-space points.
type SegmentHit[I comparable] struct {
	Item           I
	TI1, TI2       float64
	EntryX, EntryY float64
	ExitX, ExitY   float64
}

// QueryBox returns every item whose box overlaps (left, top, width,
// height), in unspecified order.
func (w *World[I]) QueryBox(left, top, width, height float64) ([]I, error) {
	box, err := geom.NewBox(left, top, width, height)
	if err != nil {
		return nil, fmt.Errorf("queryBox: %w", ErrInvalidDimensions)
	}

	candidates := w.grid.rangeQuery(box)
	result := make([]I, 0, len(candidates))
	for item := range candidates {
		if geom.Overlaps(w.boxes[item], box) {
			result = append(result, item)
		}
	}
	return result, nil
}

// QueryPoint returns every item whose box strictly contains (x, y),
// with the tolerance geom.ContainsPoint applies.
func (w *World[I]) QueryPoint(x, y float64) []I {
	candidates := w.grid.pointCell(x, y)
	result := make([]I, 0, len(candidates))
	for item := range candidates {
		if geom.ContainsPoint(w.boxes[item], x, y) {
			result = append(result, item)
		}
	}
	return result
}

// QuerySegment returns every item the segment (x1,y1)->(x2,y2) crosses,
// ordered by the position along the segment (and, for the portion
// before the segment starts, along its infinite extension) at which
// each is first touched.
func (w *World[I]) QuerySegment(x1, y1, x2, y2 float64) []I {
	hits := w.querySegmentHits(x1, y1, x2, y2)
	result := make([]I, len(hits))
	for i, h := range hits {
		result[i] = h.item
	}
	return result
}

// QuerySegmentWithCoords is QuerySegment with entry/exit parameters and
// world-space coordinates attached to each hit.
func (w *World[I]) QuerySegmentWithCoords(x1, y1, x2, y2 float64) []SegmentHit[I] {
	dx, dy := x2-x1, y2-y1
	hits := w.querySegmentHits(x1, y1, x2, y2)

	result := make([]SegmentHit[I], len(hits))
	for i, h := range hits {
		result[i] = SegmentHit[I]{
			Item:   h.item,
			TI1:    h.ti1,
			TI2:    h.ti2,
			EntryX: x1 + dx*h.ti1,
			EntryY: y1 + dy*h.ti1,
			ExitX:  x1 + dx*h.ti2,
			ExitY:  y1 + dy*h.ti2,
		}
	}
	return result
}

type segmentHit[I comparable] struct {
	item     I
	ti1, ti2 float64
	weight   float64
}

// querySegmentHits rasterizes the segment across the grid, keeps only
// items whose bounded [0,1] cast has its entry or exit parameter strictly
// between 0 and 1 (so a segment lying wholly inside a box does not
// report that box), and
// sorts them by the minimum parameter of the unbounded cast - so items
// fully behind the start, but on its infinite line, still sort
// sensibly.
func (w *World[I]) querySegmentHits(x1, y1, x2, y2 float64) []segmentHit[I] {
	cells := w.grid.segmentCells(x1, y1, x2, y2)

	seen := make(map[I]struct{})
	var hits []segmentHit[I]

	for _, cc := range cells {
		row := w.grid.row(cc.cy, false)
		if row == nil {
			continue
		}
		c, ok := row[cc.cx]
		if !ok {
			continue
		}

		for item := range c.items {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}

			box := w.boxes[item]
			bounded := geom.SegmentVsBox(box, x1, y1, x2, y2, 0, 1)
			if !bounded.Hit {
				continue
			}
			if !inOpenUnit(bounded.TI1) && !inOpenUnit(bounded.TI2) {
				continue
			}

			unbounded := geom.SegmentVsBox(box, x1, y1, x2, y2, math.Inf(-1), math.Inf(1))
			hits = append(hits, segmentHit[I]{
				item:   item,
				ti1:    bounded.TI1,
				ti2:    bounded.TI2,
				weight: unbounded.TI1,
			})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].weight < hits[j].weight })
	return hits
}

func inOpenUnit(v float64) bool { return v > 0 && v < 1 }
