package aabbworld

import (
	"math"

	"github.com/akmonengine/aabbworld/geom"
)

// cell holds the set of items whose box overlaps this cell. A cell is
// created lazily on first insertion and pruned from its row the moment
// its item set empties; an empty row is pruned from the grid the same
// way, so iteration cost stays proportional to occupied cells rather
// than to the grid's bounding extent.
type cell[I comparable] struct {
	items map[I]struct{}
}

// grid is a sparse two-level mapping from integer cell coordinates to
// the items overlapping that cell: row index -> column index -> cell.
type grid[I comparable] struct {
	cellSize float64
	rows     map[int]map[int]*cell[I]
}

func newGrid[I comparable](cellSize float64) *grid[I] {
	return &grid[I]{
		cellSize: cellSize,
		rows:     make(map[int]map[int]*cell[I]),
	}
}

// cellRange returns the inclusive column/row range a box occupies.
func (g *grid[I]) cellRange(b geom.Box) (cl, ct, cr, cb int) {
	cl = int(math.Floor(b.Left / g.cellSize))
	ct = int(math.Floor(b.Top / g.cellSize))
	cr = int(math.Ceil(b.Right()/g.cellSize)) - 1
	cb = int(math.Ceil(b.Bottom()/g.cellSize)) - 1
	return
}

func (g *grid[I]) row(cy int, create bool) map[int]*cell[I] {
	r, ok := g.rows[cy]
	if !ok && create {
		r = make(map[int]*cell[I])
		g.rows[cy] = r
	}
	return r
}

// insert adds item to every cell covered by b.
func (g *grid[I]) insert(item I, b geom.Box) {
	cl, ct, cr, cb := g.cellRange(b)
	for cy := ct; cy <= cb; cy++ {
		r := g.row(cy, true)
		for cx := cl; cx <= cr; cx++ {
			c, ok := r[cx]
			if !ok {
				c = &cell[I]{items: make(map[I]struct{})}
				r[cx] = c
			}
			c.items[item] = struct{}{}
		}
	}
}

// remove removes item from every cell covered by b, pruning cells and
// rows that become empty.
func (g *grid[I]) remove(item I, b geom.Box) {
	cl, ct, cr, cb := g.cellRange(b)
	for cy := ct; cy <= cb; cy++ {
		r := g.row(cy, false)
		if r == nil {
			continue
		}
		for cx := cl; cx <= cr; cx++ {
			c, ok := r[cx]
			if !ok {
				continue
			}
			delete(c.items, item)
			if len(c.items) == 0 {
				delete(r, cx)
			}
		}
		if len(r) == 0 {
			delete(g.rows, cy)
		}
	}
}

// rangeQuery returns the deduplicated union of items in every existing
// cell intersecting b's cell range.
func (g *grid[I]) rangeQuery(b geom.Box) map[I]struct{} {
	result := make(map[I]struct{})
	cl, ct, cr, cb := g.cellRange(b)
	for cy := ct; cy <= cb; cy++ {
		r := g.row(cy, false)
		if r == nil {
			continue
		}
		for cx := cl; cx <= cr; cx++ {
			c, ok := r[cx]
			if !ok {
				continue
			}
			for item := range c.items {
				result[item] = struct{}{}
			}
		}
	}
	return result
}

// pointCell returns the items in the single cell containing (x, y).
func (g *grid[I]) pointCell(x, y float64) map[I]struct{} {
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))

	r := g.row(cy, false)
	if r == nil {
		return nil
	}
	c, ok := r[cx]
	if !ok {
		return nil
	}
	return c.items
}

type cellCoord struct{ cx, cy int }

// segmentCells enumerates, in traversal order from (x1,y1) to (x2,y2),
// every cell coordinate the segment's interior touches, using a digital
// differential analyzer over the grid's cell size.
func (g *grid[I]) segmentCells(x1, y1, x2, y2 float64) []cellCoord {
	cs := g.cellSize
	cx0, cy0 := int(math.Floor(x1/cs)), int(math.Floor(y1/cs))
	cx1, cy1 := int(math.Floor(x2/cs)), int(math.Floor(y2/cs))

	vx, vy := x2-x1, y2-y1
	stepX, dtx, tx := axisStep(cs, cx0, x1, vx)
	stepY, dty, ty := axisStep(cs, cy0, y1, vy)

	cells := []cellCoord{{cx0, cy0}}
	cx, cy := cx0, cy0

	maxSteps := 2*(intAbs(cx1-cx0)+intAbs(cy1-cy0)) + 4
	for i := 0; i < maxSteps; i++ {
		if cx == cx1 && cy == cy1 {
			break
		}

		switch {
		case tx < ty:
			cx += stepX
			tx += dtx
			cells = append(cells, cellCoord{cx, cy})
		case ty < tx:
			cy += stepY
			ty += dty
			cells = append(cells, cellCoord{cx, cy})
		default:
			// Exact tie: advance both axes, emitting the two
			// diagonally-adjacent cells in the order a perfectly
			// diagonal ray would touch them before landing on the
			// new diagonal cell.
			cells = append(cells, cellCoord{cx + stepX, cy})
			cells = append(cells, cellCoord{cx, cy + stepY})
			cx += stepX
			cy += stepY
			tx += dtx
			ty += dty
			cells = append(cells, cellCoord{cx, cy})
		}
	}

	return cells
}

// axisStep computes the DDA step/delta/first-crossing triple for one
// axis: step is the cell index delta per crossing, dt is the parameter
// increment per cell, and t is the parameter of the first crossing.
func axisStep(cellSize float64, c0 int, start, v float64) (step int, dt, t float64) {
	switch {
	case v > 0:
		boundary := float64(c0+1) * cellSize
		return 1, cellSize / v, (boundary - start) / v
	case v < 0:
		boundary := float64(c0) * cellSize
		return -1, cellSize / -v, (boundary - start) / v
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
