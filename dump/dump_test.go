package dump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tiles"
)

type testMap = tiles.StaticMap[rune, tiles.Cells64[rune], *tiles.Cells64[rune]]

func makeMap(t *testing.T, lines ...string) *testMap {
	t.Helper()
	w := 0
	if len(lines) > 0 {
		w = len([]rune(lines[0]))
	}
	m, err := tiles.NewStaticMap[rune, tiles.Cells64[rune]](tiles.Ext(w, len(lines)))
	if err != nil {
		t.Fatalf("cannot create map: %v", err)
	}
	for y, line := range lines {
		for x, r := range []rune(line) {
			if err := m.Set(tiles.At(x, y), r); err != nil {
				t.Fatalf("cannot set tile: %v", err)
			}
		}
	}
	return m
}

func TestTextDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "abc", "def")
	d := New[rune]()
	var out bytes.Buffer
	if err := d.Text(&out, m); err != nil {
		t.Fatalf("text dump failed: %v", err)
	}
	if out.String() != "abc\ndef\n" {
		t.Fatalf("unexpected dump:\n%q", out.String())
	}
}

func TestTextDumpLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "abc", "def")
	type tc struct {
		cfg  Config
		want string
	}
	cases := []tc{
		{cfg: Config{CellWidth: 2}, want: "a b c \nd e f \n"},
		{cfg: Config{Ruler: true}, want: "  012\n0 abc\n1 def\n"},
		{cfg: Config{MaxWidth: 2}, want: "ab…\nde…\n"},
		{cfg: Config{MaxWidth: 3}, want: "abc\ndef\n"},
	}
	for _, c := range cases {
		d := New[rune]()
		d.Config = c.cfg
		var out bytes.Buffer
		if err := d.Text(&out, m); err != nil {
			t.Fatalf("text dump failed: %v", err)
		}
		if out.String() != c.want {
			t.Fatalf("config %+v: got %q, want %q", c.cfg, out.String(), c.want)
		}
	}
}

func TestTextDumpOfRegion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "abcd", "efgh", "ijkl")
	r, err := m.Region(tiles.At(1, 1), tiles.Ext(2, 2))
	if err != nil {
		t.Fatalf("region failed: %v", err)
	}
	defer r.Release()
	var out bytes.Buffer
	if err := New[rune]().Text(&out, r); err != nil {
		t.Fatalf("text dump failed: %v", err)
	}
	if out.String() != "fg\njk\n" {
		t.Fatalf("unexpected region dump %q", out.String())
	}
}

func TestDumpRespectsBorrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "abcd", "efgh")
	r, err := m.RegionMut(tiles.At(2, 0), tiles.Ext(2, 2))
	if err != nil {
		t.Fatalf("region-mut failed: %v", err)
	}
	var out bytes.Buffer
	err = New[rune]().Text(&out, m)
	if !errors.Is(err, tiles.ErrBorrowConflict) {
		t.Fatalf("expected ErrBorrowConflict, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("failed dump must not write anything, wrote %q", out.String())
	}
	if err := New[rune]().Text(&out, r); err != nil {
		t.Fatalf("dump through the mutable region failed: %v", err)
	}
	if out.String() != "cd\ngh\n" {
		t.Fatalf("unexpected region dump %q", out.String())
	}
	r.Release()
}

func TestColoredDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "#.", ".#")
	red := color.New(color.FgRed)
	red.EnableColor()
	d := New[rune]()
	d.Color = Palette(map[rune]*color.Color{'#': red})
	var out bytes.Buffer
	if err := d.Text(&out, m); err != nil {
		t.Fatalf("text dump failed: %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[31m#") {
		t.Fatalf("expected colored wall tile, got %q", out.String())
	}
	d.NoColor = true
	out.Reset()
	if err := d.Text(&out, m); err != nil {
		t.Fatalf("text dump failed: %v", err)
	}
	if out.String() != "#.\n.#\n" {
		t.Fatalf("NoColor dump contains escapes: %q", out.String())
	}
}

func TestHTMLDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	m := makeMap(t, "#<")
	d := New[rune]()
	d.Class = func(r rune) string {
		if r == '#' {
			return "wall"
		}
		return ""
	}
	var out bytes.Buffer
	if err := d.HTML(&out, m); err != nil {
		t.Fatalf("html dump failed: %v", err)
	}
	want := `<table class="tiles"><caption>2×1</caption><tbody><tr>` +
		`<td class="wall">#</td><td>&lt;</td></tr></tbody></table>`
	if out.String() != want {
		t.Fatalf("unexpected html dump:\n%s\nwant\n%s", out.String(), want)
	}
}

func TestGlyphOf(t *testing.T) {
	if GlyphOf('x') != "x" || GlyphOf(rune(0)) != " " {
		t.Errorf("unexpected rune glyphs")
	}
	if GlyphOf(42) != "42" {
		t.Errorf("expected %q, got %q", "42", GlyphOf(42))
	}
	if GlyphOf(tiles.At(1, 2)) != "(1,2)" {
		t.Errorf("expected Stringer glyph, got %q", GlyphOf(tiles.At(1, 2)))
	}
}

func TestGlyphWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	type tc struct {
		lines []string
		want  string
	}
	cases := []tc{
		{lines: []string{"#..", "..."}, want: "#..\n...\n"},
		{lines: []string{"#*1", "©.+"}, want: "#*1\n©.+\n"},
		{lines: []string{"中.", ".#"}, want: "中. \n. # \n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if err := New[rune]().Text(&out, makeMap(t, c.lines...)); err != nil {
			t.Fatalf("text dump failed: %v", err)
		}
		if out.String() != c.want {
			t.Errorf("dump of %q: got %q, want %q", c.lines, out.String(), c.want)
		}
	}
	d := New[rune]()
	for s, want := range map[string]int{"#": 1, ".": 1, "7": 1, "中": 2, "😀": 2, "##": 2} {
		if w := d.width(s); w != want {
			t.Errorf("width(%q) = %d, want %d", s, w, want)
		}
	}
}
