package tiles

import "fmt"

// BorrowID identifies a live borrow of a map.
type BorrowID uint32

// NoBorrowID denotes the map itself, which is not a borrow.
const NoBorrowID BorrowID = 0

// BorrowKind differentiates shared (read-only) from mutable borrows.
type BorrowKind uint8

const (
	BorrowShared BorrowKind = iota
	BorrowMut
)

func (k BorrowKind) String() string {
	switch k {
	case BorrowShared:
		return "shared"
	case BorrowMut:
		return "mutable"
	default:
		return "unknown"
	}
}

// BorrowInfo describes a live borrow.
type BorrowInfo struct {
	ID   BorrowID
	Kind BorrowKind
	// Rect is the borrowed rectangle in map coordinates.
	Rect Rect
	// Parent is the borrow this one was carved from, or NoBorrowID if it was
	// carved from the map directly.
	Parent BorrowID
	// Rows is set for the transient borrows of row iterations.
	Rows bool
}

func (b BorrowInfo) String() string {
	what := "region"
	if b.Rows {
		what = "rows"
	}
	return fmt.Sprintf("#%d %s %s %v (parent #%d)", b.ID, b.Kind, what, b.Rect, b.Parent)
}

// BorrowError is returned when an access or borrow request conflicts with a
// live borrow. It wraps ErrBorrowConflict.
type BorrowError struct {
	Op       string     // operation which has been rejected
	Kind     BorrowKind // access requested by Op
	Rect     Rect       // requested rectangle in map coordinates
	Conflict BorrowInfo // the live borrow standing in the way
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s: %s %s access to %v blocked by borrow %v",
		ErrBorrowConflict, e.Op, e.Kind, e.Rect, e.Conflict)
}

// Unwrap makes BorrowError match ErrBorrowConflict with errors.Is.
func (e *BorrowError) Unwrap() error {
	return ErrBorrowConflict
}
