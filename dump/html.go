package dump

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes g to w as an HTML table with one cell per tile. The table has
// class "tiles" and a caption stating the extent of g. Cells get a class
// attribute if d.Class returns a non-empty class for their tile.
func (d *Dumper[T]) HTML(w io.Writer, g Grid[T]) error {
	rows, err := d.cells(g)
	if err != nil {
		return err
	}
	table := element(atom.Table, html.Attribute{Key: "class", Val: "tiles"})
	caption := element(atom.Caption)
	caption.AppendChild(text(g.Extent().String()))
	table.AppendChild(caption)
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	for _, row := range rows {
		tr := element(atom.Tr)
		for _, t := range row {
			var td *html.Node
			if class := d.class(t); class != "" {
				td = element(atom.Td, html.Attribute{Key: "class", Val: class})
			} else {
				td = element(atom.Td)
			}
			td.AppendChild(text(d.glyph(t)))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	return html.Render(w, table)
}

func (d *Dumper[T]) class(t T) string {
	if d.Class == nil {
		return ""
	}
	return d.Class(t)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
