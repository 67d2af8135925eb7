package tiles

import (
	"fmt"
	"reflect"
)

// Store is the flat, row-major tile storage owned by a map.
//
// A store of a w × h map holds exactly w*h tiles, and every slot holds a valid
// tile from construction on. Indices outside [0, Len) are rejected with
// ErrOutOfBounds.
type Store[T any] interface {
	// Len returns the number of tile slots.
	Len() int
	// At returns a copy of the tile at index i.
	At(i int) (T, error)
	// Ref returns a reference to the tile at index i.
	Ref(i int) (*T, error)
	// Span returns the live slots [i, j).
	Span(i, j int) ([]T, error)
}

// Defaulter may be implemented by tile types which have a default other than
// their zero value. Maps initialize every tile with Default() on construction
// and when cleared.
type Defaulter[T any] interface {
	Default() T
}

// DefaultTile returns the default value for tile type T: the zero value, or
// the result of T's Default method. Default is never called for pointer
// tile types, as it would run on a nil receiver; their default is nil.
func DefaultTile[T any]() T {
	var zero T
	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		return zero
	}
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

func fill[T any](slots []T, v T) {
	for i := range slots {
		slots[i] = v
	}
}

// spanOf implements Store.Span over a slice of slots.
func spanOf[T any](slots []T, i, j int) ([]T, error) {
	if i < 0 || j < i || j > len(slots) {
		return nil, fmt.Errorf("%w: span [%d,%d) of %d slots", ErrOutOfBounds, i, j, len(slots))
	}
	return slots[i:j:j], nil
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d of %d slots", ErrOutOfBounds, i, n)
}
