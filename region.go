package tiles

import "fmt"

// view holds what read-only and mutable regions have in common: the map, the
// borrow and the rectangle in map coordinates.
type view[T any, S Store[T]] struct {
	m      *Map[T, S]
	id     BorrowID
	rect   Rect // absolute, i.e. in map coordinates
	origin Pos  // top-left corner in the coordinates of the source
}

// Region is a read-only, borrowed window onto a rectangle of a map or of
// another region.
//
// Region coordinates are relative to the region's top-left corner. Any number
// of read-only regions may overlap each other. A Region has to be released
// when it is no longer needed.
type Region[T any, S Store[T]] struct {
	view[T, S]
}

// carveRegion borrows rectangle (origin, ext), given relative to src, for
// reading on behalf of holder.
func carveRegion[T any, S Store[T]](m *Map[T, S], holder BorrowID, src Rect, origin Pos, ext Extent) (*Region[T, S], error) {
	v, err := carve(m, holder, src, origin, ext, BorrowShared)
	if err != nil {
		return nil, err
	}
	return &Region[T, S]{view: v}, nil
}

func carve[T any, S Store[T]](m *Map[T, S], holder BorrowID, src Rect, origin Pos, ext Extent, kind BorrowKind) (view[T, S], error) {
	local := Rect{Pos: origin, Extent: ext}
	if !local.Within(src.Extent) {
		return view[T, S]{}, fmt.Errorf("%w: %v not within %v", ErrRegionOutOfBounds, local, src.Extent)
	}
	abs := local.Translate(src.Pos)
	op := "region"
	if kind == BorrowMut {
		op = "region-mut"
	}
	id, err := m.borrows.begin(op, holder, kind, abs, false)
	if err != nil {
		return view[T, S]{}, err
	}
	return view[T, S]{m: m, id: id, rect: abs, origin: origin}, nil
}

// Map returns the map this region has been carved from, directly or
// indirectly.
func (v *view[T, S]) Map() *Map[T, S] {
	return v.m
}

// ID returns the borrow ID of the region.
func (v *view[T, S]) ID() BorrowID {
	return v.id
}

// Extent returns the size of the region.
func (v *view[T, S]) Extent() Extent {
	return v.rect.Extent
}

// Width returns the number of tiles per row of the region.
func (v *view[T, S]) Width() int {
	return v.rect.W
}

// Height returns the number of rows of the region.
func (v *view[T, S]) Height() int {
	return v.rect.H
}

// InBounds reports whether p addresses a tile of the region.
func (v *view[T, S]) InBounds(p Pos) bool {
	return v.rect.Extent.Contains(p)
}

// Top returns the y coordinate of the top of the region on its source.
func (v *view[T, S]) Top() int {
	return v.origin.Y
}

// Left returns the x coordinate of the left of the region on its source.
func (v *view[T, S]) Left() int {
	return v.origin.X
}

// Bottom returns the y coordinate just below the region on its source.
func (v *view[T, S]) Bottom() int {
	return v.origin.Y + v.rect.H
}

// Right returns the x coordinate just right of the region on its source.
func (v *view[T, S]) Right() int {
	return v.origin.X + v.rect.W
}

// Bounds returns the rectangle of the region in map coordinates.
func (v *view[T, S]) Bounds() Rect {
	return v.rect
}

// Get returns the tile at p, relative to the region.
func (v *view[T, S]) Get(p Pos) (T, error) {
	if !v.rect.Extent.Contains(p) {
		var zero T
		return zero, outOfBounds(p, v.rect.Extent)
	}
	return v.m.read("get", v.id, v.rect.Pos.Add(p))
}

// Row returns a copy of row y of the region.
func (v *view[T, S]) Row(y int) ([]T, error) {
	return v.m.rowCopy(v.id, v.rect, y)
}

// Rows starts a read-only row iteration over the region. See Rows.
func (v *view[T, S]) Rows() (*Rows[T, S], error) {
	return newRows(v.m, v.id, v.rect)
}

// Region carves a read-only region from this region. origin and ext are
// relative to this region, and the new region has to fit into it.
func (v *view[T, S]) Region(origin Pos, ext Extent) (*Region[T, S], error) {
	return carveRegion(v.m, v.id, v.rect, origin, ext)
}

// Release ends the borrow. Every region carved from this one and every open
// row iteration over it is released as well. Releasing a region more than
// once is a no-op.
func (v *view[T, S]) Release() {
	if v.m != nil {
		v.m.borrows.end(v.id)
	}
}

// Released reports whether the region has been released, either directly or
// by releasing the region it has been carved from.
func (v *view[T, S]) Released() bool {
	return v.m == nil || !v.m.borrows.alive(v.id)
}

func (v *view[T, S]) String() string {
	return fmt.Sprintf("region #%d %v", v.id, v.rect)
}
