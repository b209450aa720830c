package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

const (
	minBranch = 25
	maxBranch = 50
)

// Index is an immutable R-tree over atoms. It is built once and safe for
// concurrent readers.
type Index struct {
	tree  *rtreego.Rtree
	n     int
	bbox  BBox
	empty bool
}

type entry struct {
	atom Atom
	box  BBox
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// BuildIndex bulk-loads atoms into a new index.
func BuildIndex(atoms []Atom) *Index {
	objs := make([]rtreego.Spatial, 0, len(atoms))
	idx := &Index{empty: true}
	for _, a := range atoms {
		bb := a.Bound()
		if idx.empty {
			idx.bbox, idx.empty = bb, false
		} else {
			idx.bbox = idx.bbox.Union(bb)
		}
		objs = append(objs, &entry{atom: a, box: bb, rect: toRect(bb)})
	}
	idx.tree = rtreego.NewTree(2, minBranch, maxBranch, objs...)
	idx.n = len(objs)
	return idx
}

// Len returns the number of indexed atoms.
func (idx *Index) Len() int { return idx.n }

// Bounds returns the union of every atom's box.
func (idx *Index) Bounds() (BBox, error) {
	if idx == nil || idx.empty {
		return BBox{}, ErrEmptyGeometry
	}
	return idx.bbox, nil
}

// QueryIntersecting calls yield for every atom whose box intersects box, in
// no particular order, until yield returns false.
func (idx *Index) QueryIntersecting(box BBox, yield func(Atom) bool) {
	if idx == nil || idx.empty {
		return
	}
	// abort only ends the current leaf in rtreego, so sibling leaves are
	// refused once yield has asked to stop
	stopped := false
	idx.tree.SearchIntersect(toRect(queryBox(box)), func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		if stopped {
			return true, true
		}
		e := obj.(*entry)
		if !e.box.Intersects(box) {
			return true, false
		}
		stopped = !yield(e.atom)
		return true, stopped
	})
}

// Any reports whether some atom intersecting box satisfies pred, stopping at
// the first one that does.
func (idx *Index) Any(box BBox, pred func(Atom) bool) bool {
	found := false
	idx.QueryIntersecting(box, func(a Atom) bool {
		found = pred(a)
		return !found
	})
	return found
}

// queryBox pads the search box slightly; the tree treats touching
// rectangles as disjoint while candidates must include them.
func queryBox(b BBox) BBox {
	d := math.Max(b.Width(), b.Height()) * 1e-9
	if d == 0 {
		d = 1e-12
	}
	return b.Pad(d)
}

func toRect(b BBox) rtreego.Rect {
	r, err := rtreego.NewRectFromPoints(rtreego.Point{b.MinX, b.MinY}, rtreego.Point{b.MaxX, b.MaxY})
	if err != nil {
		// dimensions always match
		panic(err)
	}
	return r
}
