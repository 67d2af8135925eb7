package tiles

import "fmt"

// Map is a grid of tiles of type T, stored in a Store of type S.
//
// Clients usually work with one of the concrete map types, StaticMap or
// DynamicMap, which embed a Map. A Map must not be copied after
// construction.
type Map[T any, S Store[T]] struct {
	ext     Extent
	store   S
	borrows ledger
}

func (m *Map[T, S]) init(ext Extent, store S, cfg Config) {
	m.ext = ext
	m.store = store
	m.borrows.init(cfg)
	tracer().Debugf("tiles: new %v map with %d cells", ext, store.Len())
}

func checkExtent(ext Extent) error {
	if ext.W < 0 || ext.H < 0 {
		return fmt.Errorf("%w: negative extent %v", ErrIllegalArguments, ext)
	}
	return nil
}

// Extent returns the size of the map.
func (m *Map[T, S]) Extent() Extent {
	return m.ext
}

// Width returns the number of tiles per row.
func (m *Map[T, S]) Width() int {
	return m.ext.W
}

// Height returns the number of rows.
func (m *Map[T, S]) Height() int {
	return m.ext.H
}

// InBounds reports whether p addresses a tile of the map.
func (m *Map[T, S]) InBounds(p Pos) bool {
	return m.ext.Contains(p)
}

func (m *Map[T, S]) bounds() Rect {
	return Rect{Extent: m.ext}
}

// Get returns the tile at p.
//
// Fails with ErrOutOfBounds if p is outside the map, and with
// ErrBorrowConflict if p is covered by a live mutable region.
func (m *Map[T, S]) Get(p Pos) (T, error) {
	if !m.ext.Contains(p) {
		var zero T
		return zero, outOfBounds(p, m.ext)
	}
	return m.read("get", NoBorrowID, p)
}

// Set stores v at p.
//
// Fails with ErrOutOfBounds if p is outside the map, and with
// ErrBorrowConflict if p is covered by any live region. The map is not
// modified on failure.
func (m *Map[T, S]) Set(p Pos, v T) error {
	if !m.ext.Contains(p) {
		return outOfBounds(p, m.ext)
	}
	return m.write("set", NoBorrowID, p, v)
}

// Update calls fn with a reference to the tile at p, for in-place updates.
// The tile is borrowed mutably while fn runs: regions overlapping p cannot
// be carved from within fn. The same restrictions as for Set apply, and fn
// is not called on failure. The reference must not be retained after fn
// returns.
func (m *Map[T, S]) Update(p Pos, fn func(*T)) error {
	if !m.ext.Contains(p) {
		return outOfBounds(p, m.ext)
	}
	return m.update("update", NoBorrowID, p, fn)
}

// Clear resets every tile to the default tile. It fails with
// ErrBorrowConflict while any region is alive.
func (m *Map[T, S]) Clear() error {
	return m.fillRect("clear", NoBorrowID, m.bounds(), DefaultTile[T]())
}

// ClearTo sets every tile to v. It fails with ErrBorrowConflict while any
// region is alive.
func (m *Map[T, S]) ClearTo(v T) error {
	return m.fillRect("clear", NoBorrowID, m.bounds(), v)
}

// Row returns a copy of row y.
func (m *Map[T, S]) Row(y int) ([]T, error) {
	return m.rowCopy(NoBorrowID, m.bounds(), y)
}

// WithRowMut calls fn with row y as a slice aliasing the map's storage. The
// row is borrowed mutably while fn runs. The slice must not be retained after
// fn returns.
func (m *Map[T, S]) WithRowMut(y int, fn func([]T)) error {
	return m.withRowMut(NoBorrowID, m.bounds(), y, fn)
}

// Rows starts a read-only row iteration over the map. See Rows.
func (m *Map[T, S]) Rows() (*Rows[T, S], error) {
	return newRows(m, NoBorrowID, m.bounds())
}

// RowsMut starts a mutable row iteration over the map. See RowsMut.
func (m *Map[T, S]) RowsMut() (*RowsMut[T, S], error) {
	return newRowsMut(m, NoBorrowID, m.bounds())
}

// Region borrows the rectangle at origin with extent ext for reading.
//
// Fails with ErrRegionOutOfBounds if the rectangle is not fully inside the
// map, and with ErrBorrowConflict if it overlaps a live mutable region.
func (m *Map[T, S]) Region(origin Pos, ext Extent) (*Region[T, S], error) {
	return carveRegion(m, NoBorrowID, m.bounds(), origin, ext)
}

// RegionMut borrows the rectangle at origin with extent ext for reading
// and writing.
//
// Fails with ErrRegionOutOfBounds if the rectangle is not fully inside the
// map, and with ErrBorrowConflict if it overlaps any live region.
func (m *Map[T, S]) RegionMut(origin Pos, ext Extent) (*RegionMut[T, S], error) {
	return carveRegionMut(m, NoBorrowID, m.bounds(), origin, ext)
}

// Borrows returns the live borrows of the map, in creation order.
func (m *Map[T, S]) Borrows() []BorrowInfo {
	return m.borrows.snapshot()
}

// --- Access on behalf of a holder -----------------------------------------

// The following helpers take positions and rectangles in map coordinates
// and have to be called with bounds already checked by the caller.

func (m *Map[T, S]) read(op string, holder BorrowID, abs Pos) (T, error) {
	if err := m.borrows.check(op, holder, BorrowShared, cell(abs)); err != nil {
		var zero T
		return zero, err
	}
	return m.store.At(m.ext.Offset(abs))
}

func (m *Map[T, S]) write(op string, holder BorrowID, abs Pos, v T) error {
	t, err := m.ref(op, holder, abs)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (m *Map[T, S]) ref(op string, holder BorrowID, abs Pos) (*T, error) {
	if err := m.borrows.check(op, holder, BorrowMut, cell(abs)); err != nil {
		return nil, err
	}
	return m.store.Ref(m.ext.Offset(abs))
}

// update runs fn on the tile at abs under a transient mutable borrow.
func (m *Map[T, S]) update(op string, holder BorrowID, abs Pos, fn func(*T)) error {
	id, err := m.borrows.begin(op, holder, BorrowMut, cell(abs), false)
	if err != nil {
		return err
	}
	defer m.borrows.end(id)
	t, err := m.ref(op, id, abs)
	if err != nil {
		return err
	}
	fn(t)
	return nil
}

// span returns the live storage of a single-row rectangle.
func (m *Map[T, S]) span(op string, holder BorrowID, kind BorrowKind, row Rect) ([]T, error) {
	assert(row.H == 1, "span called with multi-row rectangle")
	if err := m.borrows.check(op, holder, kind, row); err != nil {
		return nil, err
	}
	i := m.ext.Offset(row.Pos)
	return m.store.Span(i, i+row.W)
}

func (m *Map[T, S]) fillRect(op string, holder BorrowID, rect Rect, v T) error {
	if err := m.borrows.check(op, holder, BorrowMut, rect); err != nil {
		return err
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		i := m.ext.Offset(At(rect.X, y))
		slots, err := m.store.Span(i, i+rect.W)
		if err != nil {
			return err
		}
		fill(slots, v)
	}
	return nil
}

// rowOf returns the map rectangle of row y of rect.
func rowOf(rect Rect, y int) (Rect, error) {
	if y < 0 || y >= rect.H {
		return Rect{}, fmt.Errorf("%w: row %d of %v", ErrOutOfBounds, y, rect.Extent)
	}
	return Rect{Pos: At(rect.X, rect.Y+y), Extent: Ext(rect.W, 1)}, nil
}

func (m *Map[T, S]) rowCopy(holder BorrowID, rect Rect, y int) ([]T, error) {
	row, err := rowOf(rect, y)
	if err != nil {
		return nil, err
	}
	slots, err := m.span("row", holder, BorrowShared, row)
	if err != nil {
		return nil, err
	}
	return append([]T(nil), slots...), nil
}

// withRowMut runs fn on row y of rect under a transient mutable borrow.
func (m *Map[T, S]) withRowMut(holder BorrowID, rect Rect, y int, fn func([]T)) error {
	row, err := rowOf(rect, y)
	if err != nil {
		return err
	}
	id, err := m.borrows.begin("row", holder, BorrowMut, row, true)
	if err != nil {
		return err
	}
	defer m.borrows.end(id)
	slots, err := m.span("row", id, BorrowMut, row)
	if err != nil {
		return err
	}
	fn(slots)
	return nil
}

func cell(p Pos) Rect {
	return Rect{Pos: p, Extent: Ext(1, 1)}
}

func outOfBounds(p Pos, ext Extent) error {
	return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, ext)
}
