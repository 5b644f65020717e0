package aabbworld

import (
	"reflect"
	"testing"
)

func TestGrid_InsertAndRangeQuery(t *testing.T) {
	g := newGrid[string](10)
	g.insert("a", box(0, 0, 10, 10))
	g.insert("b", box(25, 25, 10, 10))

	got := g.rangeQuery(box(0, 0, 10, 10))
	if _, ok := got["a"]; !ok || len(got) != 1 {
		t.Fatalf("rangeQuery = %v, want just {a}", got)
	}

	got = g.rangeQuery(box(0, 0, 40, 40))
	if _, ok := got["a"]; !ok {
		t.Errorf("expected a in range")
	}
	if _, ok := got["b"]; !ok {
		t.Errorf("expected b in range")
	}
}

func TestGrid_InsertSpansMultipleCells(t *testing.T) {
	g := newGrid[string](10)
	g.insert("a", box(5, 5, 10, 10)) // spans columns/rows 0 and 1

	for _, c := range []cellCoord{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		r := g.row(c.cy, false)
		if r == nil {
			t.Fatalf("row %d missing", c.cy)
		}
		if _, ok := r[c.cx]; !ok {
			t.Errorf("expected item in cell %v", c)
		}
	}
}

func TestGrid_RemovePrunesEmptyCellsAndRows(t *testing.T) {
	g := newGrid[string](10)
	b := box(0, 0, 10, 10)
	g.insert("a", b)
	g.remove("a", b)

	if len(g.rows) != 0 {
		t.Errorf("expected no rows left, got %v", g.rows)
	}
}

func TestGrid_RemoveLeavesOtherItemsInSharedCell(t *testing.T) {
	g := newGrid[string](10)
	b := box(0, 0, 10, 10)
	g.insert("a", b)
	g.insert("b", b)
	g.remove("a", b)

	got := g.rangeQuery(b)
	if _, ok := got["b"]; !ok || len(got) != 1 {
		t.Fatalf("rangeQuery = %v, want just {b}", got)
	}
}

func TestGrid_PointCell(t *testing.T) {
	g := newGrid[string](10)
	g.insert("a", box(0, 0, 10, 10))

	if _, ok := g.pointCell(5, 5)["a"]; !ok {
		t.Errorf("expected a at (5,5)")
	}
	if g.pointCell(100, 100) != nil {
		t.Errorf("expected no items at (100,100)")
	}
}

func TestGrid_SegmentCells_Straight(t *testing.T) {
	g := newGrid[string](10)
	got := g.segmentCells(0, 0, 25, 0)
	want := []cellCoord{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segmentCells = %v, want %v", got, want)
	}
}

func TestGrid_SegmentCells_Vertical(t *testing.T) {
	g := newGrid[string](10)
	got := g.segmentCells(5, 0, 5, -25)
	want := []cellCoord{{0, 0}, {0, -1}, {0, -2}, {0, -3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segmentCells = %v, want %v", got, want)
	}
}

func TestGrid_SegmentCells_DiagonalTieBreak(t *testing.T) {
	g := newGrid[string](10)
	got := g.segmentCells(0, 0, 20, 20)
	want := []cellCoord{
		{0, 0},
		{1, 0}, {0, 1}, {1, 1},
		{2, 1}, {1, 2}, {2, 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segmentCells = %v, want %v", got, want)
	}
}

func TestGrid_SegmentCells_SingleCell(t *testing.T) {
	g := newGrid[string](10)
	got := g.segmentCells(1, 1, 8, 8)
	want := []cellCoord{{0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segmentCells = %v, want %v", got, want)
	}
}
