//go:build !tiles_noalloc

package tiles

// DynamicMap is a map whose tiles live in a single heap allocation, sized on
// construction.
type DynamicMap[T any] struct {
	Map[T, *DynamicStore[T]]
}

// NewDynamicMap creates a dynamic map of extent ext with every tile set to
// the default tile. Exactly one allocation is made for the tiles; if it cannot
// be satisfied, NewDynamicMap fails with ErrAllocation.
func NewDynamicMap[T any](ext Extent) (*DynamicMap[T], error) {
	return NewDynamicMapWithConfig[T](ext, Config{})
}

// NewDynamicMapWithConfig is NewDynamicMap with an explicit configuration.
func NewDynamicMapWithConfig[T any](ext Extent, cfg Config) (*DynamicMap[T], error) {
	if err := checkExtent(ext); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	store, err := newDynamicStore(ext, DefaultTile[T](), cfg.MaxCells)
	if err != nil {
		tracer().Errorf("tiles: cannot create %v map: %v", ext, err)
		return nil, err
	}
	m := &DynamicMap[T]{}
	m.Map.init(ext, store, cfg)
	return m, nil
}
