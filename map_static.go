package tiles

// StaticMap is a map whose tiles live in an inline buffer of type B (one of
// Cells16 … Cells4K). The capacity is fixed at compile time:
//
//	m, err := tiles.NewStaticMap[rune, tiles.Cells64[rune]](tiles.Ext(8, 8))
//
// StaticMap makes no allocation of its own for the tiles.
type StaticMap[T any, B any, PB Buffer[T, B]] struct {
	Map[T, *FixedStore[T, B, PB]]
	fixed FixedStore[T, B, PB]
}

// NewStaticMap creates a static map of extent ext with every tile set to the
// default tile. Fails with ErrCapacityExceeded if ext needs more cells than B
// provides.
func NewStaticMap[T any, B any, PB Buffer[T, B]](ext Extent) (*StaticMap[T, B, PB], error) {
	return NewStaticMapWithConfig[T, B, PB](ext, Config{})
}

// NewStaticMapWithConfig is NewStaticMap with an explicit configuration.
func NewStaticMapWithConfig[T any, B any, PB Buffer[T, B]](ext Extent, cfg Config) (*StaticMap[T, B, PB], error) {
	if err := checkExtent(ext); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	m := &StaticMap[T, B, PB]{}
	if err := m.fixed.init(ext, DefaultTile[T]()); err != nil {
		return nil, err
	}
	m.Map.init(ext, &m.fixed, cfg)
	return m, nil
}

// Cap returns the number of tiles the map's inline buffer can hold.
func (m *StaticMap[T, B, PB]) Cap() int {
	return m.fixed.Cap()
}
