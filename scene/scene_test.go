package scene

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tiles"
	"github.com/npillmayer/tiles/dump"
)

func textOf(t *testing.T, g dump.Grid[rune]) string {
	t.Helper()
	var out bytes.Buffer
	if err := dump.New[rune]().Text(&out, g); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	return out.String()
}

func TestLoadRoom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	sc, err := Load("testdata/room.toml")
	if err != nil {
		t.Fatalf("cannot load scene: %v", err)
	}
	if sc.Extent() != tiles.Ext(8, 5) || sc.Map.Kind != KindStatic {
		t.Fatalf("unexpected map spec %+v", sc.Map)
	}
	if len(sc.Fills) != 3 || len(sc.Regions) != 2 {
		t.Fatalf("expected 3 fills and 2 regions, have %d and %d", len(sc.Fills), len(sc.Regions))
	}
	b, err := Build(sc)
	if err != nil {
		t.Fatalf("cannot build scene: %v", err)
	}
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected region errors: %v", err)
	}
	floor, ok := b.Region("floor")
	if !ok {
		t.Fatalf("region 'floor' missing")
	}
	if got := textOf(t, floor.Grid); got != "......\n......\n......\n" {
		t.Fatalf("unexpected floor:\n%s", got)
	}
	corner, _ := b.Region("corner")
	if got := textOf(t, corner.Grid); got != "##\n..\n" {
		t.Fatalf("unexpected corner:\n%s", got)
	}
	if len(b.Borrows()) != 2 {
		t.Fatalf("expected 2 live borrows, have %v", b.Borrows())
	}
	if err := b.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	b.Release()
	want := "########\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"###++###\n"
	if got := textOf(t, b.Map); got != want {
		t.Fatalf("unexpected map:\n%s\nwant\n%s", got, want)
	}
}

func TestConflictingRegions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	sc, err := Parse(`
[map]
width = 6
height = 6
kind = "static"

[[region]]
name = "editor"
x = 0
y = 0
width = 4
height = 4
mutable = true

[[region]]
name = "viewer"
x = 2
y = 2
width = 4
height = 4

[[region]]
name = "aside"
x = 4
y = 0
width = 2
height = 2
`)
	if err != nil {
		t.Fatalf("cannot parse scene: %v", err)
	}
	b, err := Build(sc)
	if err != nil {
		t.Fatalf("cannot build scene: %v", err)
	}
	defer b.Release()
	if len(b.Errors) != 1 || !errors.Is(b.Errors[0], tiles.ErrBorrowConflict) {
		t.Fatalf("expected a single borrow conflict, have %v", b.Errors)
	}
	if _, ok := b.Region("viewer"); ok {
		t.Fatalf("conflicting region must not be carved")
	}
	if _, ok := b.Region("aside"); !ok {
		t.Fatalf("disjoint region missing")
	}
	editor, _ := b.Region("editor")
	if !editor.Mutable || editor.Bounds != tiles.RectAt(0, 0, 4, 4) {
		t.Fatalf("unexpected editor view %+v", editor)
	}
	var out bytes.Buffer
	if err := dump.New[rune]().Text(&out, b.Map); !errors.Is(err, tiles.ErrBorrowConflict) {
		t.Fatalf("dumping the map under a mutable region must fail, got %v", err)
	}
}

func TestInvalidScenes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	invalid := []string{
		"[map]\nwidth = 3\n",
		"[map]\nwidth = 3\nheight = 3\nkind = \"sparse\"\n",
		"[map]\nwidth = 3\nheight = 3\ndefault = \"ab\"\n",
		"[map]\nwidth = 3\nheight = 3\ncolour = \"red\"\n",
		"[map]\nwidth = 3\nheight = 3\n[[fill]]\nx = 0\ny = 0\nwidth = 1\nheight = 1\nglyph = \"\"\n",
		"[[fill]]\nglyph = \"x\"\n",
	}
	for _, text := range invalid {
		if _, err := Parse(text); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("expected ErrInvalidScene for\n%s\ngot %v", text, err)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tiles")
	defer teardown()
	//
	sc, err := Parse("[map]\nwidth = 3\nheight = 3\nkind = \"static\"\n[[fill]]\nx = 2\ny = 2\nwidth = 2\nheight = 1\nglyph = \"x\"\n")
	if err != nil {
		t.Fatalf("cannot parse scene: %v", err)
	}
	if _, err := Build(sc); !errors.Is(err, tiles.ErrRegionOutOfBounds) {
		t.Fatalf("expected ErrRegionOutOfBounds for fill, got %v", err)
	}
	sc, err = Parse("[map]\nwidth = 100\nheight = 100\nkind = \"static\"\n")
	if err != nil {
		t.Fatalf("cannot parse scene: %v", err)
	}
	if _, err := Build(sc); !errors.Is(err, tiles.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	sc, err = Parse("[map]\nwidth = -1\nheight = 2\nkind = \"static\"\n")
	if err != nil {
		t.Fatalf("cannot parse scene: %v", err)
	}
	if _, err := Build(sc); !errors.Is(err, tiles.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}
