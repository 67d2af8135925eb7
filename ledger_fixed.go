//go:build tiles_noalloc

package tiles

import "fmt"

// fixedMaxBorrows is the inline capacity of the borrow ledger.
const fixedMaxBorrows = DefaultMaxBorrows

type borrowSlots struct {
	// n is the number of live borrows; valid entries are store[:n].
	n     int
	store [fixedMaxBorrows]BorrowInfo
}

func (s *borrowSlots) items() []BorrowInfo {
	return s.store[:s.n]
}

func (s *borrowSlots) push(b BorrowInfo) error {
	if s.n >= len(s.store) {
		return fmt.Errorf("%w: inline ledger holds %d borrows", ErrTooManyBorrows, len(s.store))
	}
	s.store[s.n] = b
	s.n++
	return nil
}

func (s *borrowSlots) truncate(n int) {
	assert(n >= 0 && n <= s.n, "truncate exceeds inline ledger occupancy")
	for i := n; i < s.n; i++ {
		s.store[i] = BorrowInfo{}
	}
	s.n = n
}

func validateBackendConfig(cfg Config) error {
	if cfg.MaxBorrows > fixedMaxBorrows {
		return fmt.Errorf("%w: max borrows must be <= %d without allocation", ErrIllegalArguments, fixedMaxBorrows)
	}
	return nil
}
