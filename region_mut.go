package tiles

// RegionMut is a mutable, borrowed window onto a rectangle of a map or of
// another mutable region.
//
// While a RegionMut is alive, its tiles are accessible only through the
// region itself and through regions carved from it. Carving a read-only
// region from a RegionMut freezes the covered tiles: the RegionMut may still
// read them, but not write them, until the read-only region is released.
type RegionMut[T any, S Store[T]] struct {
	view[T, S]
}

func carveRegionMut[T any, S Store[T]](m *Map[T, S], holder BorrowID, src Rect, origin Pos, ext Extent) (*RegionMut[T, S], error) {
	v, err := carve(m, holder, src, origin, ext, BorrowMut)
	if err != nil {
		return nil, err
	}
	return &RegionMut[T, S]{view: v}, nil
}

// Set stores value t at p, relative to the region.
func (r *RegionMut[T, S]) Set(p Pos, t T) error {
	if !r.rect.Extent.Contains(p) {
		return outOfBounds(p, r.rect.Extent)
	}
	return r.m.write("set", r.id, r.rect.Pos.Add(p), t)
}

// Update calls fn with a reference to the tile at p, relative to the region.
// The tile is borrowed mutably while fn runs. The reference must not be
// retained after fn returns.
func (r *RegionMut[T, S]) Update(p Pos, fn func(*T)) error {
	if !r.rect.Extent.Contains(p) {
		return outOfBounds(p, r.rect.Extent)
	}
	return r.m.update("update", r.id, r.rect.Pos.Add(p), fn)
}

// Clear resets every tile of the region to the default tile.
func (r *RegionMut[T, S]) Clear() error {
	return r.m.fillRect("clear", r.id, r.rect, DefaultTile[T]())
}

// ClearTo sets every tile of the region to t.
func (r *RegionMut[T, S]) ClearTo(t T) error {
	return r.m.fillRect("clear", r.id, r.rect, t)
}

// WithRowMut calls fn with row y of the region as a slice aliasing the map's
// storage. The row is borrowed mutably while fn runs. The slice must not be
// retained after fn returns.
func (r *RegionMut[T, S]) WithRowMut(y int, fn func([]T)) error {
	return r.m.withRowMut(r.id, r.rect, y, fn)
}

// RowsMut starts a mutable row iteration over the region. See RowsMut.
func (r *RegionMut[T, S]) RowsMut() (*RowsMut[T, S], error) {
	return newRowsMut(r.m, r.id, r.rect)
}

// RegionMut carves a mutable region from this region. origin and ext are
// relative to this region. Mutable regions carved from the same region must
// not overlap each other.
func (r *RegionMut[T, S]) RegionMut(origin Pos, ext Extent) (*RegionMut[T, S], error) {
	return carveRegionMut(r.m, r.id, r.rect, origin, ext)
}
