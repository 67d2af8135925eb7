//go:build !tiles_noalloc

package tiles

type borrowSlots struct {
	live []BorrowInfo
}

func (s *borrowSlots) items() []BorrowInfo {
	return s.live
}

func (s *borrowSlots) push(b BorrowInfo) error {
	s.live = append(s.live, b)
	return nil
}

func (s *borrowSlots) truncate(n int) {
	s.live = s.live[:n]
}

func validateBackendConfig(cfg Config) error {
	return nil
}
