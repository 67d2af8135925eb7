package tiles

import (
	"fmt"

	"fortio.org/safecast"
)

// ledger tracks the live borrows of a map.
//
// A request by holder H (the map itself or a live borrow) for access of kind K
// to rectangle A conflicts with every live borrow E which
//
//   - is neither H nor an ancestor of H,
//   - overlaps A, and
//   - is mutable, or K is mutable.
//
// Reads are checked as shared requests, writes as mutable requests. Borrows
// are kept in creation order, hence parents always precede their children.
type ledger struct {
	slots borrowSlots
	limit int
	last  uint64 // last borrow ID handed out
}

func (l *ledger) init(cfg Config) {
	l.limit = cfg.MaxBorrows
}

func (l *ledger) empty() bool {
	return len(l.slots.items()) == 0
}

func (l *ledger) lookup(id BorrowID) (BorrowInfo, bool) {
	for _, b := range l.slots.items() {
		if b.ID == id {
			return b, true
		}
	}
	return BorrowInfo{}, false
}

func (l *ledger) alive(id BorrowID) bool {
	if id == NoBorrowID {
		return true
	}
	_, ok := l.lookup(id)
	return ok
}

// isAncestor reports whether borrow a is a (transitive) parent of borrow h.
func (l *ledger) isAncestor(a, h BorrowID) bool {
	for cur := h; cur != NoBorrowID; {
		b, ok := l.lookup(cur)
		if !ok {
			return false
		}
		if b.Parent == a {
			return true
		}
		cur = b.Parent
	}
	return false
}

// check verifies that holder may access rect with the given kind of access.
func (l *ledger) check(op string, holder BorrowID, kind BorrowKind, rect Rect) error {
	if l.empty() {
		if holder != NoBorrowID {
			return fmt.Errorf("%w: %s through borrow #%d", ErrReleased, op, holder)
		}
		return nil
	}
	if !l.alive(holder) {
		return fmt.Errorf("%w: %s through borrow #%d", ErrReleased, op, holder)
	}
	for _, b := range l.slots.items() {
		if b.ID == holder || !b.Rect.Overlaps(rect) {
			continue
		}
		if kind == BorrowShared && b.Kind == BorrowShared {
			continue
		}
		if l.isAncestor(b.ID, holder) {
			continue
		}
		return &BorrowError{Op: op, Kind: kind, Rect: rect, Conflict: b}
	}
	return nil
}

// begin registers a new borrow of rect, carved by holder.
func (l *ledger) begin(op string, holder BorrowID, kind BorrowKind, rect Rect, rows bool) (BorrowID, error) {
	if err := l.check(op, holder, kind, rect); err != nil {
		tracer().Debugf("tiles: %v", err)
		return NoBorrowID, err
	}
	if len(l.slots.items()) >= l.limit {
		return NoBorrowID, fmt.Errorf("%w: limit is %d", ErrTooManyBorrows, l.limit)
	}
	next, err := safecast.Conv[uint32](l.last + 1)
	if err != nil {
		return NoBorrowID, fmt.Errorf("%w: borrow IDs exhausted", ErrTooManyBorrows)
	}
	info := BorrowInfo{
		ID:     BorrowID(next),
		Kind:   kind,
		Rect:   rect,
		Parent: holder,
		Rows:   rows,
	}
	if err := l.slots.push(info); err != nil {
		return NoBorrowID, err
	}
	l.last++
	tracer().Debugf("tiles: begin borrow %v", info)
	return info.ID, nil
}

// end releases borrow id together with every borrow carved from it. It
// returns the number of borrows released.
func (l *ledger) end(id BorrowID) int {
	if id == NoBorrowID {
		return 0
	}
	// Parents precede their children and every live borrow has a live
	// parent. A borrow is therefore released iff it is id or its parent is
	// missing from the survivors compacted so far.
	items := l.slots.items()
	keep := 0
	for _, b := range items {
		if b.ID == id || (b.Parent != NoBorrowID && !containsParent(items[:keep], b.Parent)) {
			continue
		}
		items[keep] = b
		keep++
	}
	dead := len(items) - keep
	l.slots.truncate(keep)
	if dead > 0 {
		tracer().Debugf("tiles: end borrow #%d (released %d)", id, dead)
	}
	return dead
}

// snapshot returns a copy of the live borrows in creation order.
func (l *ledger) snapshot() []BorrowInfo {
	items := l.slots.items()
	if len(items) == 0 {
		return nil
	}
	out := make([]BorrowInfo, len(items))
	copy(out, items)
	return out
}

// verify checks ledger consistency: unique IDs, creation order, live parents
// and parent containment.
func (l *ledger) verify() error {
	items := l.slots.items()
	if len(items) > l.limit {
		return fmt.Errorf("%w: %d live borrows exceed limit %d", ErrIllegalArguments, len(items), l.limit)
	}
	for i, b := range items {
		if b.ID == NoBorrowID || uint64(b.ID) > l.last {
			return fmt.Errorf("%w: borrow %v has invalid ID", ErrIllegalArguments, b)
		}
		if i > 0 && items[i-1].ID >= b.ID {
			return fmt.Errorf("%w: borrows out of creation order at %v", ErrIllegalArguments, b)
		}
		if b.Parent == NoBorrowID {
			continue
		}
		p, ok := l.lookup(b.Parent)
		if !ok || p.ID >= b.ID {
			return fmt.Errorf("%w: borrow %v outlives its parent", ErrIllegalArguments, b)
		}
		inner := b.Rect.Translate(At(-p.Rect.X, -p.Rect.Y))
		if !inner.Within(p.Rect.Extent) {
			return fmt.Errorf("%w: borrow %v exceeds parent %v", ErrIllegalArguments, b, p)
		}
	}
	return nil
}

func containsParent(live []BorrowInfo, id BorrowID) bool {
	for _, b := range live {
		if b.ID == id {
			return true
		}
	}
	return false
}
