package tiles

import "fmt"

// Inline buffers for static maps. The buffer type of a static map fixes its
// capacity at compile time; the map's extent may use any number of cells up
// to that capacity.
type (
	Cells16[T any]  [16]T
	Cells64[T any]  [64]T
	Cells256[T any] [256]T
	Cells1K[T any]  [1024]T
	Cells4K[T any]  [4096]T
)

func (c *Cells16[T]) slots() []T  { return c[:] }
func (c *Cells64[T]) slots() []T  { return c[:] }
func (c *Cells256[T]) slots() []T { return c[:] }
func (c *Cells1K[T]) slots() []T  { return c[:] }
func (c *Cells4K[T]) slots() []T  { return c[:] }

// Buffer is satisfied by pointers to the inline buffer types of this package.
type Buffer[T, B any] interface {
	*B
	slots() []T
}

// FixedStore is a Store backed by an inline array of type B. It never
// allocates.
type FixedStore[T any, B any, PB Buffer[T, B]] struct {
	// buf is the fixed backing storage; valid tiles are buf[:n].
	buf B
	n   int
}

// init prepares s for an extent. It fails with ErrCapacityExceeded if the
// extent needs more cells than the buffer provides.
func (s *FixedStore[T, B, PB]) init(ext Extent, dflt T) error {
	n, err := ext.Cells()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	}
	if capacity := len(PB(&s.buf).slots()); n > capacity {
		return fmt.Errorf("%w: %v needs %d cells, capacity is %d", ErrCapacityExceeded, ext, n, capacity)
	}
	s.n = n
	fill(s.slots(), dflt)
	return nil
}

func (s *FixedStore[T, B, PB]) slots() []T {
	return PB(&s.buf).slots()[:s.n]
}

// Cap returns the capacity of the inline buffer.
func (s *FixedStore[T, B, PB]) Cap() int {
	return len(PB(&s.buf).slots())
}

// Len returns the number of tile slots in use.
func (s *FixedStore[T, B, PB]) Len() int {
	return s.n
}

// At returns a copy of the tile at index i.
func (s *FixedStore[T, B, PB]) At(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, indexError(i, s.n)
	}
	return PB(&s.buf).slots()[i], nil
}

// Ref returns a reference to the tile at index i.
func (s *FixedStore[T, B, PB]) Ref(i int) (*T, error) {
	if i < 0 || i >= s.n {
		return nil, indexError(i, s.n)
	}
	return &PB(&s.buf).slots()[i], nil
}

// Span returns the live slots [i, j).
func (s *FixedStore[T, B, PB]) Span(i, j int) ([]T, error) {
	return spanOf(s.slots(), i, j)
}
