package geom

import (
	"errors"
	"sync"
	"testing"

	"github.com/paulmach/orb"
)

func TestIndexEmpty(t *testing.T) {
	idx := BuildIndex(nil)
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if _, err := idx.Bounds(); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("Bounds() error = %v, want ErrEmptyGeometry", err)
	}
	if err := ErrEmptyGeometry; err.Error() != "empty geometry set" {
		t.Errorf("ErrEmptyGeometry = %q", err)
	}
	idx.QueryIntersecting(BBox{MaxX: 1, MaxY: 1}, func(Atom) bool {
		t.Fatal("yield called on an empty index")
		return true
	})
}

func TestIndexBounds(t *testing.T) {
	idx := BuildIndex([]Atom{
		Point{orb.Point{3, -2}},
		Segment{orb.Point{-1, 0}, orb.Point{2, 5}},
		Polygon{orb.Polygon{{{0, 0}, {7, 0}, {7, 1}, {0, 0}}}},
	})
	got, err := idx.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	want := BBox{MinX: -1, MinY: -2, MaxX: 7, MaxY: 5}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
}

func gridAtoms(n int) []Atom {
	var atoms []Atom
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			atoms = append(atoms, Point{orb.Point{float64(i), float64(j)}})
		}
	}
	return atoms
}

func TestQueryIntersecting(t *testing.T) {
	idx := BuildIndex(gridAtoms(20))

	tests := []struct {
		name string
		box  BBox
		want int
	}{
		{"interior", BBox{MinX: 2.5, MinY: 2.5, MaxX: 5.5, MaxY: 4.5}, 6},
		{"edges included", BBox{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}, 9},
		{"degenerate box", BBox{MinX: 7, MinY: 7, MaxX: 7, MaxY: 7}, 1},
		{"outside", BBox{MinX: 30, MinY: 30, MaxX: 40, MaxY: 40}, 0},
		{"everything", BBox{MinX: -1, MinY: -1, MaxX: 100, MaxY: 100}, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			idx.QueryIntersecting(tt.box, func(a Atom) bool {
				if !a.Bound().Intersects(tt.box) {
					t.Errorf("candidate %v does not touch %+v", a, tt.box)
				}
				n++
				return true
			})
			if n != tt.want {
				t.Errorf("visited %d atoms, want %d", n, tt.want)
			}
		})
	}
}

func TestQueryTouchingSegment(t *testing.T) {
	// the segment's box only shares an edge with the query box
	idx := BuildIndex([]Atom{Segment{orb.Point{0, 0}, orb.Point{4, 0}}})
	hit := idx.Any(BBox{MinX: 0, MinY: 0, MaxX: 0.5, MaxY: 0.5}, func(Atom) bool { return true })
	if !hit {
		t.Errorf("Any() missed a segment on the box edge")
	}
}

func TestQueryEarlyStop(t *testing.T) {
	idx := BuildIndex(gridAtoms(20))
	n := 0
	idx.QueryIntersecting(BBox{MinX: -1, MinY: -1, MaxX: 100, MaxY: 100}, func(Atom) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("visited %d atoms after stopping, want 3", n)
	}

	calls := 0
	found := idx.Any(BBox{MinX: -1, MinY: -1, MaxX: 100, MaxY: 100}, func(Atom) bool {
		calls++
		return true
	})
	if !found || calls != 1 {
		t.Errorf("Any() = %v after %d calls, want true after 1", found, calls)
	}
}

func TestIndexConcurrentReaders(t *testing.T) {
	idx := BuildIndex(gridAtoms(30))
	box := BBox{MinX: 10, MinY: 10, MaxX: 12, MaxY: 12}
	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx.QueryIntersecting(box, func(Atom) bool {
				counts[i]++
				return true
			})
		}()
	}
	wg.Wait()
	for i, n := range counts {
		if n != 9 {
			t.Errorf("reader %d saw %d atoms, want 9", i, n)
		}
	}
}
