package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Collider is anything the index can hold. Implementations must be pointer
// types: the index keys entries by collider identity.
type Collider interface {
	Bounds() core.RectF
}

// probeTag marks the query object so it never matches a group lookup.
const probeTag = "__probe"

// Index stores colliders in named groups on top of a resolv spatial hash.
// resolv narrows a query down to the colliders sharing grid cells with it,
// then Overlapping applies the exact strict-overlap test.
//
// Objects are registered one pixel larger than the collider on every side so
// that a sub-pixel overlap straddling a cell boundary is never dropped by the
// broadphase.
type Index struct {
	space   *resolv.Space
	probe   *resolv.Object
	entries map[Collider]*indexEntry
	byObj   map[*resolv.Object]*indexEntry
	nextSeq int
}

type indexEntry struct {
	collider Collider
	obj      *resolv.Object
	tag      string
	seq      int // insertion order, used for deterministic results
}

// NewIndex creates an index covering bounds (which must start at or after
// the origin) using square grid cells of cellSize pixels.
func NewIndex(bounds core.RectF, cellSize int) *Index {
	if cellSize <= 0 {
		cellSize = 32
	}
	w := int(math.Ceil(bounds.Right())) + 2*cellSize
	h := int(math.Ceil(bounds.Bottom())) + 2*cellSize

	space := resolv.NewSpace(w, h, cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)

	return &Index{
		space:   space,
		probe:   probe,
		entries: make(map[Collider]*indexEntry),
		byObj:   make(map[*resolv.Object]*indexEntry),
	}
}

// Add registers a collider under the given group tag.
// Adding a collider twice moves it to the new group.
func (idx *Index) Add(c Collider, tag string) {
	if _, ok := idx.entries[c]; ok {
		idx.Remove(c)
	}

	r := c.Bounds().Inflate(1)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	idx.space.Add(obj)

	e := &indexEntry{collider: c, obj: obj, tag: tag, seq: idx.nextSeq}
	idx.nextSeq++
	idx.entries[c] = e
	idx.byObj[obj] = e
}

// Sync refreshes a collider's cells after it moved.
func (idx *Index) Sync(c Collider) {
	e, ok := idx.entries[c]
	if !ok {
		return
	}
	r := c.Bounds().Inflate(1)
	e.obj.X, e.obj.Y, e.obj.W, e.obj.H = r.X, r.Y, r.W, r.H
	e.obj.Update()
}

// Remove unregisters a collider. Removing an unknown collider is a no-op.
func (idx *Index) Remove(c Collider) {
	e, ok := idx.entries[c]
	if !ok {
		return
	}
	idx.space.Remove(e.obj)
	delete(idx.entries, c)
	delete(idx.byObj, e.obj)
}

// Has reports whether the collider is registered.
func (idx *Index) Has(c Collider) bool {
	_, ok := idx.entries[c]
	return ok
}

// Len returns the number of colliders registered under tag.
func (idx *Index) Len(tag string) int {
	n := 0
	for _, e := range idx.entries {
		if e.tag == tag {
			n++
		}
	}
	return n
}

// Overlapping returns every collider in the given groups whose bounds
// strictly overlap r, in insertion order. With no tags all groups match.
func (idx *Index) Overlapping(r core.RectF, tags ...string) []Collider {
	q := r.Inflate(1)
	idx.probe.X, idx.probe.Y, idx.probe.W, idx.probe.H = q.X, q.Y, q.W, q.H
	idx.probe.Update()

	collision := idx.probe.Check(0, 0, tags...)
	if collision == nil {
		return nil
	}

	hits := make([]*indexEntry, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		e, ok := idx.byObj[obj]
		if !ok {
			continue
		}
		if r.Intersects(e.collider.Bounds()) {
			hits = append(hits, e)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].seq < hits[j].seq
	})

	out := make([]Collider, len(hits))
	for i, e := range hits {
		out[i] = e.collider
	}
	return out
}

// Any reports whether r overlaps a collider in the given groups.
func (idx *Index) Any(r core.RectF, tags ...string) bool {
	return len(idx.Overlapping(r, tags...)) > 0
}
