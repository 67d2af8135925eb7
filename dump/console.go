package dump

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Text writes g to w as fixed-width text, one line per row. Every tile
// occupies the same number of positions, wide enough for the widest glyph
// of the grid.
//
// If MaxWidth is set, columns which do not fit are left out and clipped lines
// end with '…'.
func (d *Dumper[T]) Text(w io.Writer, g Grid[T]) error {
	rows, err := d.cells(g)
	if err != nil {
		return err
	}
	ext := g.Extent()
	glyphs := make([][]string, len(rows))
	widths := make([][]int, len(rows))
	cellw := max(d.CellWidth, 1)
	for y, row := range rows {
		glyphs[y] = make([]string, len(row))
		widths[y] = make([]int, len(row))
		for x, t := range row {
			s := d.glyph(t)
			glyphs[y][x], widths[y][x] = s, d.width(s)
			cellw = max(cellw, widths[y][x])
		}
	}
	margin := 0
	if d.Ruler {
		margin = len(strconv.Itoa(max(ext.H-1, 0))) + 1
	}
	cols, clipped := ext.W, false
	if d.MaxWidth > 0 {
		if fit := max(d.MaxWidth-margin, 0) / cellw; fit < cols {
			cols, clipped = fit, true
			tracer().Debugf("dump: clipping %v to %d columns", ext, cols)
		}
	}
	bw := bufio.NewWriter(w)
	if d.Ruler {
		bw.WriteString(strings.Repeat(" ", margin))
		for x := 0; x < cols; x++ {
			bw.WriteString(strconv.Itoa(x % 10))
			bw.WriteString(strings.Repeat(" ", cellw-1))
		}
		bw.WriteByte('\n')
	}
	for y, row := range rows {
		if d.Ruler {
			label := strconv.Itoa(y)
			bw.WriteString(strings.Repeat(" ", margin-1-len(label)))
			bw.WriteString(label)
			bw.WriteByte(' ')
		}
		for x := 0; x < cols; x++ {
			d.writeCell(bw, row[x], glyphs[y][x])
			bw.WriteString(strings.Repeat(" ", cellw-widths[y][x]))
		}
		if clipped {
			bw.WriteString("…")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (d *Dumper[T]) writeCell(w io.Writer, t T, s string) {
	if !d.NoColor && d.Color != nil {
		if c := d.Color(t); c != nil {
			c.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

// Print writes a text dump of g to stdout.
func (d *Dumper[T]) Print(g Grid[T]) error {
	return d.Text(os.Stdout, g)
}

// Palette returns a Color function which looks up tiles in a fixed table.
// Tiles missing from the table are printed without color.
func Palette[T comparable](colors map[T]*color.Color) func(T) *color.Color {
	return func(t T) *color.Color {
		return colors[t]
	}
}

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and clips dumps to it. Dumps to a non-terminal are not colored.
func ConfigFromTerminal() Config {
	config := Config{CellWidth: 1}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		config.NoColor = true
		return config
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 10 {
		config.MaxWidth = w - 1
	}
	tracer().Infof("dump: clipping console dumps to %d positions", config.MaxWidth)
	return config
}
