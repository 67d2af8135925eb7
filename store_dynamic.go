//go:build !tiles_noalloc

package tiles

import (
	"fmt"
	"runtime"
)

// DynamicStore is a Store backed by a single heap slice, sized on
// construction.
type DynamicStore[T any] struct {
	tiles []T
}

// newDynamicStore allocates storage for ext. It fails with ErrAllocation if the
// cell count overflows, exceeds maxCells, or cannot be allocated.
func newDynamicStore[T any](ext Extent, dflt T, maxCells int) (*DynamicStore[T], error) {
	n, err := ext.Cells()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if n > maxCells {
		return nil, fmt.Errorf("%w: %v needs %d cells, limit is %d", ErrAllocation, ext, n, maxCells)
	}
	tiles, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	fill(tiles, dflt)
	return &DynamicStore[T]{tiles: tiles}, nil
}

// allocate turns a runtime allocation panic (e.g., "makeslice: len out of
// range") into ErrAllocation.
func allocate[T any](n int) (tiles []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			tiles, err = nil, fmt.Errorf("%w: %v", ErrAllocation, rerr)
		}
	}()
	return make([]T, n), nil
}

// Len returns the number of tile slots.
func (s *DynamicStore[T]) Len() int {
	return len(s.tiles)
}

// At returns a copy of the tile at index i.
func (s *DynamicStore[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.tiles) {
		var zero T
		return zero, indexError(i, len(s.tiles))
	}
	return s.tiles[i], nil
}

// Ref returns a reference to the tile at index i.
func (s *DynamicStore[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= len(s.tiles) {
		return nil, indexError(i, len(s.tiles))
	}
	return &s.tiles[i], nil
}

// Span returns the live slots [i, j).
func (s *DynamicStore[T]) Span(i, j int) ([]T, error) {
	return spanOf(s.tiles, i, j)
}
