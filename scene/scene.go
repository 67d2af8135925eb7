package scene

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/tiles"
)

// Map kinds.
const (
	KindDynamic = "dynamic"
	KindStatic  = "static"
)

// Scene is a map description.
type Scene struct {
	Map     MapSpec      `toml:"map"`
	Fills   []Fill       `toml:"fill"`
	Regions []RegionSpec `toml:"region"`
}

// MapSpec describes the map of a scene.
type MapSpec struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Kind       string `toml:"kind"`
	Default    string `toml:"default"`
	MaxCells   int    `toml:"max_cells"`
	MaxBorrows int    `toml:"max_borrows"`
}

// Fill sets every tile of a rectangle to a glyph.
type Fill struct {
	Name   string `toml:"name"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Glyph  string `toml:"glyph"`
}

// RegionSpec describes a named region of the map.
type RegionSpec struct {
	Name    string `toml:"name"`
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Mutable bool   `toml:"mutable"`
}

// Load reads a scene from a TOML file.
func Load(path string) (*Scene, error) {
	var sc Scene
	meta, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := sc.validate(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("scene: loaded %s", path)
	return &sc, nil
}

// Parse reads a scene from TOML text.
func Parse(text string) (*Scene, error) {
	var sc Scene
	meta, err := toml.Decode(text, &sc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := sc.validate(meta); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scene) validate(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("map") {
		return fmt.Errorf("%w: missing [map]", ErrInvalidScene)
	}
	if !meta.IsDefined("map", "width") || !meta.IsDefined("map", "height") {
		return fmt.Errorf("%w: missing [map].width or [map].height", ErrInvalidScene)
	}
	switch sc.Map.Kind {
	case "":
		sc.Map.Kind = KindDynamic
	case KindDynamic, KindStatic:
	default:
		return fmt.Errorf("%w: unknown map kind %q", ErrInvalidScene, sc.Map.Kind)
	}
	if sc.Map.Default != "" && utf8.RuneCountInString(sc.Map.Default) != 1 {
		return fmt.Errorf("%w: [map].default must be a single character", ErrInvalidScene)
	}
	for i, f := range sc.Fills {
		if utf8.RuneCountInString(f.Glyph) != 1 {
			return fmt.Errorf("%w: fill %q: glyph must be a single character", ErrInvalidScene, label(f.Name, i))
		}
	}
	return nil
}

// Extent returns the extent of the scene's map.
func (sc *Scene) Extent() tiles.Extent {
	return tiles.Ext(sc.Map.Width, sc.Map.Height)
}

// Config returns the map configuration of the scene.
func (sc *Scene) Config() tiles.Config {
	return tiles.Config{MaxCells: sc.Map.MaxCells, MaxBorrows: sc.Map.MaxBorrows}
}

// DefaultGlyph returns the tile every cell starts with.
func (sc *Scene) DefaultGlyph() rune {
	if sc.Map.Default == "" {
		return '.'
	}
	r, _ := utf8.DecodeRuneInString(sc.Map.Default)
	return r
}

func (f Fill) glyph() rune {
	r, _ := utf8.DecodeRuneInString(f.Glyph)
	return r
}

func (f Fill) rect() (tiles.Pos, tiles.Extent) {
	return tiles.At(f.X, f.Y), tiles.Ext(f.Width, f.Height)
}

func (r RegionSpec) rect() (tiles.Pos, tiles.Extent) {
	return tiles.At(r.X, r.Y), tiles.Ext(r.Width, r.Height)
}

func label(name string, i int) string {
	if name == "" {
		return fmt.Sprintf("#%d", i)
	}
	return name
}
