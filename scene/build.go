package scene

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tiles"
	"github.com/npillmayer/tiles/dump"
)

// View is a named region of a built scene.
type View struct {
	Name    string
	Mutable bool
	Grid    dump.Grid[rune]
	Bounds  tiles.Rect // in map coordinates
	release func()
}

// Built is a scene turned into a map, with its regions alive.
type Built struct {
	Kind    string
	Map     dump.Grid[rune]
	Regions []View
	// Errors lists the regions which could not be carved.
	Errors  []error
	check   func() error
	borrows func() []tiles.BorrowInfo
}

// Build creates the map of a scene, applies its fills and carves its
// regions.
//
// Failing to create the map or to apply a fill is an error. Regions which
// cannot be carved, e.g. because they conflict with a mutable region
// declared earlier, are skipped and reported in Built.Errors.
func Build(sc *Scene) (*Built, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: no scene", ErrInvalidScene)
	}
	var b *Built
	var err error
	switch sc.Map.Kind {
	case KindStatic:
		b, err = buildStatic(sc)
	case KindDynamic, "":
		b, err = buildDynamic(sc)
	default:
		err = fmt.Errorf("%w: unknown map kind %q", ErrInvalidScene, sc.Map.Kind)
	}
	if err != nil {
		tracer().Errorf("scene: %v", err)
		return nil, err
	}
	return b, nil
}

// buildStatic selects the smallest inline buffer which holds the scene.
func buildStatic(sc *Scene) (*Built, error) {
	ext := sc.Extent()
	n, err := ext.Cells()
	if err != nil {
		return nil, err
	}
	switch {
	case n <= 16:
		return buildStaticWith[tiles.Cells16[rune]](sc)
	case n <= 64:
		return buildStaticWith[tiles.Cells64[rune]](sc)
	case n <= 256:
		return buildStaticWith[tiles.Cells256[rune]](sc)
	case n <= 1024:
		return buildStaticWith[tiles.Cells1K[rune]](sc)
	default:
		return buildStaticWith[tiles.Cells4K[rune]](sc)
	}
}

func buildStaticWith[B any, PB tiles.Buffer[rune, B]](sc *Scene) (*Built, error) {
	m, err := tiles.NewStaticMapWithConfig[rune, B, PB](sc.Extent(), sc.Config())
	if err != nil {
		return nil, err
	}
	return populate(&m.Map, sc, KindStatic)
}

// populate applies fills and carves regions on a freshly created map.
func populate[S tiles.Store[rune]](m *tiles.Map[rune, S], sc *Scene, kind string) (*Built, error) {
	if err := m.ClearTo(sc.DefaultGlyph()); err != nil {
		return nil, err
	}
	for i, f := range sc.Fills {
		if err := fill(m, f); err != nil {
			return nil, fmt.Errorf("fill %q: %w", label(f.Name, i), err)
		}
	}
	b := &Built{
		Kind:    kind,
		Map:     m,
		check:   m.Check,
		borrows: m.Borrows,
	}
	for i, rs := range sc.Regions {
		v, err := carve(m, rs)
		if err != nil {
			err = fmt.Errorf("region %q: %w", label(rs.Name, i), err)
			tracer().Infof("scene: %v", err)
			b.Errors = append(b.Errors, err)
			continue
		}
		v.Name = label(rs.Name, i)
		b.Regions = append(b.Regions, v)
	}
	return b, nil
}

func fill[S tiles.Store[rune]](m *tiles.Map[rune, S], f Fill) error {
	origin, ext := f.rect()
	r, err := m.RegionMut(origin, ext)
	if err != nil {
		return err
	}
	defer r.Release()
	return r.ClearTo(f.glyph())
}

func carve[S tiles.Store[rune]](m *tiles.Map[rune, S], rs RegionSpec) (View, error) {
	origin, ext := rs.rect()
	if rs.Mutable {
		r, err := m.RegionMut(origin, ext)
		if err != nil {
			return View{}, err
		}
		return View{Mutable: true, Grid: r, Bounds: r.Bounds(), release: r.Release}, nil
	}
	r, err := m.Region(origin, ext)
	if err != nil {
		return View{}, err
	}
	return View{Grid: r, Bounds: r.Bounds(), release: r.Release}, nil
}

// Region returns the region with the given name.
func (b *Built) Region(name string) (View, bool) {
	for _, v := range b.Regions {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// Release releases every region of the scene. Afterwards the map is
// accessible as a whole.
func (b *Built) Release() {
	for _, v := range b.Regions {
		v.release()
	}
}

// Borrows returns the live borrows on the scene's map.
func (b *Built) Borrows() []tiles.BorrowInfo {
	return b.borrows()
}

// Check verifies the invariants of the scene's map.
func (b *Built) Check() error {
	return b.check()
}

// Err joins the region errors of the scene, or returns nil if every region
// has been carved.
func (b *Built) Err() error {
	return errors.Join(b.Errors...)
}
