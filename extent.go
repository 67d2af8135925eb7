package tiles

import (
	"fmt"
	"math/bits"

	"fortio.org/safecast"
)

// Extent is the width/height size of a map or region. It never changes
// during the lifetime of the entity it describes.
type Extent struct {
	W, H int
}

// Ext is a shortcut for Extent{W: w, H: h}.
func Ext(w, h int) Extent {
	return Extent{W: w, H: h}
}

// Pos is an (x, y) position, always relative to the map or region it is
// used with. x grows to the right, y grows downwards.
type Pos struct {
	X, Y int
}

// At is a shortcut for Pos{X: x, Y: y}.
func At(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns p translated by q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Contains reports whether p lies within e, i.e. 0 ≤ p.X < W and 0 ≤ p.Y < H.
func (e Extent) Contains(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < e.W && p.Y < e.H
}

// Offset returns the row-major storage offset of p, p.Y*W + p.X.
//
// Offset performs no bounds check; callers have to check p with Contains first.
func (e Extent) Offset(p Pos) int {
	return p.Y*e.W + p.X
}

// Empty reports whether e covers no cells.
func (e Extent) Empty() bool {
	return e.W <= 0 || e.H <= 0
}

// Cells returns W*H. Negative dimensions are rejected with ErrIllegalArguments,
// and a product which does not fit into an int is flagged as well.
func (e Extent) Cells() (int, error) {
	if e.W < 0 || e.H < 0 {
		return 0, fmt.Errorf("%w: negative extent %v", ErrIllegalArguments, e)
	}
	hi, lo := bits.Mul64(uint64(e.W), uint64(e.H))
	if hi != 0 {
		return 0, fmt.Errorf("%w: cell count of %v overflows", ErrIllegalArguments, e)
	}
	n, err := safecast.Conv[int](lo)
	if err != nil {
		return 0, fmt.Errorf("%w: cell count of %v: %v", ErrIllegalArguments, e, err)
	}
	return n, nil
}

func (e Extent) String() string {
	return fmt.Sprintf("%d×%d", e.W, e.H)
}

// Rect is a rectangle of cells with its top-left corner at Pos.
type Rect struct {
	Pos
	Extent
}

// RectAt creates a rectangle with origin (x, y) and extent w × h.
func RectAt(x, y, w, h int) Rect {
	return Rect{Pos: At(x, y), Extent: Ext(w, h)}
}

// Right returns the x coordinate just right of r (exclusive bound).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate just below r (exclusive bound).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns r moved by offset p.
func (r Rect) Translate(p Pos) Rect {
	return Rect{Pos: r.Pos.Add(p), Extent: r.Extent}
}

// Within reports whether r lies completely inside a source of extent e.
// An empty rectangle is within e as long as its origin does not leave e's
// closed bounds.
func (r Rect) Within(e Extent) bool {
	if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 {
		return false
	}
	return r.X <= e.W-r.W && r.Y <= e.H-r.H
}

// Overlaps reports whether r and s share at least one cell. Empty rectangles
// overlap nothing.
func (r Rect) Overlaps(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.X < s.Right() && s.X < r.Right() && r.Y < s.Bottom() && s.Y < r.Bottom()
}

// ContainsPos reports whether position p (in the same coordinate system as r)
// lies inside r.
func (r Rect) ContainsPos(p Pos) bool {
	return r.Extent.Contains(Pos{X: p.X - r.X, Y: p.Y - r.Y})
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Pos, r.Extent)
}
