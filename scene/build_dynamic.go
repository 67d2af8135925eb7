//go:build !tiles_noalloc

package scene

import "github.com/npillmayer/tiles"

func buildDynamic(sc *Scene) (*Built, error) {
	m, err := tiles.NewDynamicMapWithConfig[rune](sc.Extent(), sc.Config())
	if err != nil {
		return nil, err
	}
	return populate(&m.Map, sc, KindDynamic)
}
