//go:build tiles_noalloc

package scene

import "fmt"

func buildDynamic(sc *Scene) (*Built, error) {
	return nil, fmt.Errorf("%w: dynamic maps are not available with tag tiles_noalloc", ErrInvalidScene)
}
