package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestIntersects(t *testing.T) {
	box := BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	square := orb.Polygon{{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}, {-5, -5}}}
	donut := orb.Polygon{
		{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}, {-5, -5}},
		{{-2, -2}, {-2, 3}, {3, 3}, {3, -2}, {-2, -2}},
	}
	small := orb.Polygon{{{0.2, 0.2}, {0.8, 0.2}, {0.5, 0.8}, {0.2, 0.2}}}
	far := orb.Polygon{{{10, 10}, {11, 10}, {11, 11}, {10, 10}}}

	tests := []struct {
		name string
		a    Atom
		want bool
	}{
		{"point inside", Point{orb.Point{0.5, 0.5}}, true},
		{"point on min corner", Point{orb.Point{0, 0}}, true},
		{"point on max x", Point{orb.Point{1, 0.5}}, false},
		{"point on max y", Point{orb.Point{0.5, 1}}, false},
		{"point outside", Point{orb.Point{2, 2}}, false},
		{"segment crossing", Segment{orb.Point{-1, 0.5}, orb.Point{2, 0.5}}, true},
		{"segment inside", Segment{orb.Point{0.2, 0.2}, orb.Point{0.3, 0.4}}, true},
		{"segment touching edge", Segment{orb.Point{1, -1}, orb.Point{1, 2}}, true},
		{"segment touching corner", Segment{orb.Point{1, 1}, orb.Point{2, 3}}, true},
		{"segment diagonal miss", Segment{orb.Point{1.5, 0}, orb.Point{3, 1.5}}, false},
		{"segment box overlap only", Segment{orb.Point{-1, 3.5}, orb.Point{3.5, -1}}, false},
		{"degenerate segment inside", Segment{orb.Point{0.5, 0.5}, orb.Point{0.5, 0.5}}, true},
		{"polygon covering", Polygon{square}, true},
		{"polygon hole covering", Polygon{donut}, false},
		{"polygon inside box", Polygon{small}, true},
		{"polygon far", Polygon{far}, false},
		{"empty polygon", Polygon{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, box); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestPointTiling(t *testing.T) {
	// every point belongs to exactly one box of a 2x2 tiling
	tiles := []BBox{
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 1, MinY: 0, MaxX: 2, MaxY: 1},
		{MinX: 0, MinY: 1, MaxX: 1, MaxY: 2},
		{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2},
	}
	for _, p := range []orb.Point{{0, 0}, {1, 1}, {1, 0.5}, {0.5, 1}, {1.5, 1.5}} {
		n := 0
		for _, tile := range tiles {
			if Intersects(Point{p}, tile) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("point %v in %d tiles, want 1", p, n)
		}
	}
}
