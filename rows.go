package tiles

import (
	"fmt"
	"iter"
)

// rowBorrow is a transient borrow over the rectangle of a map or region,
// held for the duration of a row iteration.
type rowBorrow[T any, S Store[T]] struct {
	m    *Map[T, S]
	id   BorrowID
	rect Rect
	kind BorrowKind
}

func beginRows[T any, S Store[T]](m *Map[T, S], holder BorrowID, rect Rect, kind BorrowKind) (rowBorrow[T, S], error) {
	id, err := m.borrows.begin("rows", holder, kind, rect, true)
	if err != nil {
		return rowBorrow[T, S]{}, err
	}
	return rowBorrow[T, S]{m: m, id: id, rect: rect, kind: kind}, nil
}

// Close ends the iteration and releases its borrow. Closing more than once is
// a no-op.
func (rb *rowBorrow[T, S]) Close() error {
	if rb.m != nil {
		rb.m.borrows.end(rb.id)
	}
	return nil
}

// Err reports why an iteration has stopped early: it returns an error
// wrapping ErrReleased after Close, or after the map or region the iteration
// runs over has been released.
func (rb *rowBorrow[T, S]) Err() error {
	if rb.m == nil || !rb.m.borrows.alive(rb.id) {
		return fmt.Errorf("%w: row iteration #%d", ErrReleased, rb.id)
	}
	return nil
}

// Len returns the number of rows.
func (rb *rowBorrow[T, S]) Len() int {
	return rb.rect.H
}

// row returns the live storage of row y, or false if the borrow has gone.
func (rb *rowBorrow[T, S]) row(y int) ([]T, bool) {
	r, err := rowOf(rb.rect, y)
	assert(err == nil, "row iteration exceeds its rectangle")
	slots, err := rb.m.span("rows", rb.id, rb.kind, r)
	if err != nil {
		return nil, false
	}
	return slots, true
}

// Rows is a read-only row iteration over a map or region.
//
// Rows holds a shared borrow on the rectangle it iterates, so mutable regions
// overlapping it cannot be carved while it is open. All may be ranged over
// any number of times until Close is called:
//
//	rows, err := m.Rows()
//	if err != nil { … }
//	defer rows.Close()
//	for y, row := range rows.All() {
//	    for x, tile := range row { … }
//	}
type Rows[T any, S Store[T]] struct {
	rowBorrow[T, S]
}

func newRows[T any, S Store[T]](m *Map[T, S], holder BorrowID, rect Rect) (*Rows[T, S], error) {
	rb, err := beginRows(m, holder, rect, BorrowShared)
	if err != nil {
		return nil, err
	}
	return &Rows[T, S]{rowBorrow: rb}, nil
}

// All yields the rows top to bottom, each as a sequence of (x, tile) from
// left to right. Each row yields exactly Width tiles.
func (rs *Rows[T, S]) All() iter.Seq2[int, iter.Seq2[int, T]] {
	return rowSeq(&rs.rowBorrow, false, tilesOf[T])
}

// Backward is All from the bottom row to the top row. Rows keep their
// index y, and tiles within a row are still yielded left to right.
func (rs *Rows[T, S]) Backward() iter.Seq2[int, iter.Seq2[int, T]] {
	return rowSeq(&rs.rowBorrow, true, tilesOf[T])
}

// RowsMut is a mutable row iteration over a map or region. It yields
// references to the tiles, which must not be used after Close.
//
// RowsMut holds a mutable borrow on the rectangle it iterates: while it is
// open, neither other regions nor the map or region it has been started from
// may access the rectangle.
type RowsMut[T any, S Store[T]] struct {
	rowBorrow[T, S]
}

func newRowsMut[T any, S Store[T]](m *Map[T, S], holder BorrowID, rect Rect) (*RowsMut[T, S], error) {
	rb, err := beginRows(m, holder, rect, BorrowMut)
	if err != nil {
		return nil, err
	}
	return &RowsMut[T, S]{rowBorrow: rb}, nil
}

// All yields the rows top to bottom, each as a sequence of (x, *tile) from
// left to right.
func (rs *RowsMut[T, S]) All() iter.Seq2[int, iter.Seq2[int, *T]] {
	return rowSeq(&rs.rowBorrow, false, refsOf[T])
}

// Backward is All from the bottom row to the top row.
func (rs *RowsMut[T, S]) Backward() iter.Seq2[int, iter.Seq2[int, *T]] {
	return rowSeq(&rs.rowBorrow, true, refsOf[T])
}

func rowSeq[T any, S Store[T], V any](rb *rowBorrow[T, S], backward bool,
	tiles func([]T) iter.Seq2[int, V]) iter.Seq2[int, iter.Seq2[int, V]] {
	//
	return func(yield func(int, iter.Seq2[int, V]) bool) {
		for i := 0; i < rb.rect.H; i++ {
			y := i
			if backward {
				y = rb.rect.H - 1 - i
			}
			slots, ok := rb.row(y)
			if !ok {
				return
			}
			if !yield(y, tiles(slots)) {
				return
			}
		}
	}
}

func tilesOf[T any](slots []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for x := range slots {
			if !yield(x, slots[x]) {
				return
			}
		}
	}
}

func refsOf[T any](slots []T) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for x := range slots {
			if !yield(x, &slots[x]) {
				return
			}
		}
	}
}
