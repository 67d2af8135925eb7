/*
Package scene describes tile maps in TOML and builds them.

A scene states the size and kind of a map, a list of rectangular fills and
a list of named regions:

	[map]
	width = 8
	height = 4
	kind = "static"    # or "dynamic" (default)
	default = "."

	[[fill]]
	name = "wall"
	x = 0
	y = 0
	width = 8
	height = 1
	glyph = "#"

	[[region]]
	name = "room"
	x = 1
	y = 1
	width = 3
	height = 2
	mutable = true

Fills are applied in order, each through a short-lived mutable region.
Regions are carved after all fills and stay alive until the built scene is
released. Regions which violate the borrow rules of package tiles are not
fatal; they are reported in Built.Errors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tiles"
)

// tracer writes to the tracer of package tiles.
func tracer() tracing.Trace {
	return tiles.T()
}

// SceneError is an error type for scene descriptions.
type SceneError string

func (e SceneError) Error() string {
	return string(e)
}

// ErrInvalidScene is flagged for scene descriptions which cannot be built.
const ErrInvalidScene = SceneError("scene: invalid scene description")
