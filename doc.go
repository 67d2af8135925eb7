/*
Package tiles offers typed, two-dimensional grids of tiles ("maps") and
borrowed rectangular views onto them ("regions").

Maps

A map stores width × height tiles in row-major order. Every tile is
initialized to a default value at construction time: the zero value of the
tile type, or the value returned by the tile type's Default method if it has
one (see Defaulter). Two storage strategies are available:

  - StaticMap keeps its tiles in an inline array whose capacity is part of
    the map's type (see Cells16 … Cells4K). No separate allocation is made
    for the tiles.
  - DynamicMap keeps its tiles in a single heap slice sized on construction.
    It is not available when building with tag `tiles_noalloc`.

Both share the same API: Get, Set, Update, Row, WithRowMut, Rows, Clear and
the region-carving operations. References to tiles and rows are only lent
for the duration of a callback (Update, WithRowMut) or of an open row
iteration (RowsMut), and are tracked as borrows for that time.

Regions

A region is a non-owning, coordinate-translating window onto a rectangle of
a map or of another region. Region coordinates start at (0, 0) in the
region's top-left corner; each access is checked against the region's own
extent and then translated to the map. A region holds no tiles of its own,
so it always sees writes made through any other legal path.

Regions come in two flavours. Region is read-only; any number of read-only
regions may overlap. RegionMut may read and write; while it is alive no
other handle may touch its cells, except regions carved from it. The map
keeps a ledger of live borrows and rejects a conflicting request at the
moment it is made, with an error wrapping ErrBorrowConflict:

	m, _ := tiles.NewDynamicMap[rune](tiles.Ext(8, 4))
	r, _ := m.RegionMut(tiles.At(0, 0), tiles.Ext(4, 4))
	_, err := m.RegionMut(tiles.At(2, 0), tiles.Ext(4, 4))
	// errors.Is(err, tiles.ErrBorrowConflict) == true
	r.Release()

Regions have to be released when they are no longer needed. Releasing a
region releases every region carved from it, and any later use of a
released handle fails with ErrReleased.

Nested regions are flattened: each region knows its absolute rectangle on
the map, so access costs the same at every nesting depth. For borrow
checking, however, a nested region belongs to the region it was carved
from, not to the map.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package tiles

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer, falling back to the tracer selected
// for key 'tiles' if no core-tracer has been set.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		return tracing.Select("tiles")
	}
	return gtrace.CoreTracer
}

// tracer is T for generic code, where a type parameter T shadows it.
func tracer() tracing.Trace {
	return T()
}

// TileError is an error type for the tiles module.
type TileError string

func (e TileError) Error() string {
	return string(e)
}

// ErrOutOfBounds is flagged whenever a position lies outside the extent of
// the map or region it addresses, or a store index exceeds the store length.
const ErrOutOfBounds = TileError("tiles: position out of bounds")

// ErrRegionOutOfBounds is flagged whenever a region is requested which is not
// fully contained in its source.
const ErrRegionOutOfBounds = TileError("tiles: region out of bounds")

// ErrAllocation signals that storage for a dynamic map could not be provided.
const ErrAllocation = TileError("tiles: allocation failed")

// ErrCapacityExceeded signals that an extent does not fit into the inline
// storage of a static map.
const ErrCapacityExceeded = TileError("tiles: extent exceeds static capacity")

// ErrBorrowConflict signals that an access or borrow would overlap a live
// borrow in a way which breaks exclusivity.
const ErrBorrowConflict = TileError("tiles: conflicting borrow")

// ErrReleased is flagged when a released region or row iteration is used.
const ErrReleased = TileError("tiles: borrow has been released")

// ErrTooManyBorrows signals that the borrow ledger cannot track another
// live borrow.
const ErrTooManyBorrows = TileError("tiles: too many live borrows")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TileError("tiles: illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
