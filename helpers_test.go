package tiles

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func traceTest(t *testing.T) func() {
	return gotestingadapter.QuickConfig(t, "tiles")
}

// glyph is a tile type with a non-zero default.
type glyph rune

func (glyph) Default() glyph { return '.' }

func makeStatic(t *testing.T, w, h int) *StaticMap[rune, Cells256[rune], *Cells256[rune]] {
	t.Helper()
	m, err := NewStaticMap[rune, Cells256[rune]](Ext(w, h))
	if err != nil {
		t.Fatalf("unexpected NewStaticMap error: %v", err)
	}
	return m
}

func mustGet[T any, S Store[T]](t *testing.T, m *Map[T, S], p Pos) T {
	t.Helper()
	v, err := m.Get(p)
	if err != nil {
		t.Fatalf("get %v failed: %v", p, err)
	}
	return v
}

func forAllPositions(ext Extent, fn func(p Pos)) {
	for y := 0; y < ext.H; y++ {
		for x := 0; x < ext.W; x++ {
			fn(At(x, y))
		}
	}
}
