package dump

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/tiles"
	"github.com/npillmayer/uax/emoji"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/width"
)

// Grid is the read-only capability a dump needs. It is implemented by maps
// and by both kinds of regions.
type Grid[T any] interface {
	Extent() tiles.Extent
	Get(tiles.Pos) (T, error)
}

// Config holds layout parameters for dumps.
type Config struct {
	// CellWidth is the minimum number of fixed-width positions per tile.
	// Columns are widened to fit the widest glyph of a dump.
	CellWidth int
	// MaxWidth clips console lines to at most this many positions, if > 0.
	MaxWidth int
	// Ruler adds column and row numbers to console dumps.
	Ruler bool
	// NoColor suppresses coloring of console dumps.
	NoColor bool
	// Context selects the East Asian width rules for glyphs. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

// Dumper writes dumps of grids with tiles of type T.
type Dumper[T any] struct {
	// Glyph renders a single tile. It defaults to GlyphOf.
	Glyph func(T) string
	// Color selects a console color for a tile. It may return nil.
	Color func(T) *color.Color
	// Class selects an HTML class attribute for a tile. It may return "".
	Class func(T) string
	Config
}

// New creates a Dumper with default settings.
func New[T any]() *Dumper[T] {
	return &Dumper[T]{
		Glyph:  GlyphOf[T],
		Config: Config{CellWidth: 1},
	}
}

// GlyphOf is the default glyph for a tile: runes and strings print as
// themselves, everything else through package fmt.
func GlyphOf[T any](t T) string {
	switch v := any(t).(type) {
	case rune:
		if v == 0 {
			return " "
		}
		return string(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(t)
}

var setupGraphemes sync.Once

// cells reads every tile of g, row by row. Nothing is written before the
// whole grid has been read, so a failing read never leaves a partial dump.
func (d *Dumper[T]) cells(g Grid[T]) ([][]T, error) {
	ext := g.Extent()
	rows := make([][]T, ext.H)
	for y := range rows {
		rows[y] = make([]T, ext.W)
		for x := range rows[y] {
			t, err := g.Get(tiles.At(x, y))
			if err != nil {
				tracer().Errorf("dump: cannot read tile (%d,%d): %v", x, y, err)
				return nil, err
			}
			rows[y][x] = t
		}
	}
	return rows, nil
}

func (d *Dumper[T]) glyph(t T) string {
	if d.Glyph == nil {
		return GlyphOf(t)
	}
	return d.Glyph(t)
}

// width returns the number of fixed-width positions glyph s occupies.
func (d *Dumper[T]) width(s string) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ctx := d.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gs := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gs.Len(); i++ {
		w += graphemeWidth(gs.Nth(i), ctx)
	}
	return w
}

// graphemeWidth is uax11.Width, except for single runes with the Emoji
// property but text presentation ('#', '*', the digits, '©' …), which uax11
// counts as wide. Those take their width from their East Asian width class.
func graphemeWidth(g string, ctx *uax11.Context) int {
	r, n := utf8.DecodeRuneInString(g)
	if n == len(g) && r != utf8.RuneError && emoji.EmojisClassForRune(r) >= 0 {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return 2
		}
		return 1
	}
	return uax11.Width([]byte(g), ctx)
}
