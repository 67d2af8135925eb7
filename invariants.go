package tiles

import "fmt"

// Check verifies the internal invariants of the map: the store holds exactly
// width × height tiles, and the borrow ledger is consistent.
func (m *Map[T, S]) Check() error {
	n, err := m.ext.Cells()
	if err != nil {
		return err
	}
	if m.store.Len() != n {
		return fmt.Errorf("%w: store holds %d tiles, extent %v needs %d", ErrIllegalArguments, m.store.Len(), m.ext, n)
	}
	for _, b := range m.borrows.snapshot() {
		if !b.Rect.Within(m.ext) {
			return fmt.Errorf("%w: borrow %v exceeds map %v", ErrIllegalArguments, b, m.ext)
		}
	}
	return m.borrows.verify()
}
