package geom

import (
	"math"
	"testing"
)

func TestSegmentVsBox_Miss(t *testing.T) {
	b := Box{0, 0, 10, 10}

	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"parallel and outside on x", 20, 0, 20, 20},
		{"parallel and outside on y", 0, 20, 20, 20},
		{"passes entirely above", -5, -5, 15, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SegmentVsBox(b, tt.x1, tt.y1, tt.x2, tt.y2, 0, 1)
			if c.Hit {
				t.Errorf("expected miss, got hit with ti1=%v ti2=%v", c.TI1, c.TI2)
			}
		})
	}
}

func TestSegmentVsBox_StraightThroughX(t *testing.T) {
	b := Box{10, 0, 10, 10}
	c := SegmentVsBox(b, 0, 5, 30, 5, math.Inf(-1), math.Inf(1))

	if !c.Hit {
		t.Fatalf("expected hit")
	}
	if math.Abs(c.TI1-1.0/3) > 1e-9 {
		t.Errorf("TI1 = %v, want ~0.333", c.TI1)
	}
	if math.Abs(c.TI2-2.0/3) > 1e-9 {
		t.Errorf("TI2 = %v, want ~0.667", c.TI2)
	}
	if c.NX1 != -1 || c.NY1 != 0 {
		t.Errorf("entry normal = (%v,%v), want (-1,0)", c.NX1, c.NY1)
	}
	if c.NX2 != 1 || c.NY2 != 0 {
		t.Errorf("exit normal = (%v,%v), want (1,0)", c.NX2, c.NY2)
	}
}

func TestSegmentVsBox_BoundedIntervalClipsButMissesOutsideRange(t *testing.T) {
	b := Box{10, 0, 10, 10}
	// Segment only spans ti in [0, 0.2]; the box starts at ti ~0.67.
	c := SegmentVsBox(b, 0, 5, 15, 5, 0, 0.2)
	if c.Hit {
		t.Errorf("expected miss because the box lies beyond the bounded interval")
	}
}

func TestSegmentVsBox_ZeroLengthAlongAxisParallelOutside(t *testing.T) {
	b := Box{0, 0, 10, 10}
	// vertical segment with constant x outside the box: parallel and outside.
	c := SegmentVsBox(b, 20, -5, 20, 15, math.Inf(-1), math.Inf(1))
	if c.Hit {
		t.Errorf("expected miss for a segment parallel to and outside the box")
	}
}
