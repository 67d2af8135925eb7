/*
Package dump writes debugging representations of tile maps and regions.

Dumps are meant for inspecting the contents of a map during development and
in tests, not for presenting maps to users. Two formats are supported:
fixed-width console text, optionally colored, and a plain HTML table.

Anything with an extent and a Get method can be dumped, in particular every
map and region type of package tiles:

	m, _ := tiles.NewDynamicMap[rune](tiles.Ext(8, 4))
	dump.New[rune]().Text(os.Stdout, m)

Reading a map for a dump is subject to the same borrow rules as any other
read: a dump of a map fails with tiles.ErrBorrowConflict while a mutable
region of that map is alive.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tiles"
)

// tracer writes to the tracer of package tiles.
func tracer() tracing.Trace {
	return tiles.T()
}
