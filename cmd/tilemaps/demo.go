package main

import (
	"fmt"

	"github.com/npillmayer/tiles"
	"github.com/npillmayer/tiles/dump"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through a small map and its borrow rules",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()
	d := dump.New[rune]()
	d.Ruler = true
	d.NoColor = !colored
	d.Color = dump.Palette(palette)
	d.Glyph = func(r rune) string {
		if r == 0 {
			return "·"
		}
		return string(r)
	}

	m, err := tiles.NewStaticMap[rune, tiles.Cells16[rune]](tiles.Ext(3, 2))
	if err != nil {
		return err
	}
	if err := m.Set(tiles.At(2, 1), 'X'); err != nil {
		return err
	}
	fmt.Fprintf(out, "%v map after setting (2,1):\n", m.Extent())
	if err := d.Text(out, m); err != nil {
		return err
	}

	r, err := m.Region(tiles.At(1, 0), tiles.Ext(2, 2))
	if err != nil {
		return err
	}
	v, err := r.Get(tiles.At(1, 1))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nregion %v reads %q at (1,1):\n", r.Bounds(), v)
	if err := d.Text(out, r); err != nil {
		return err
	}

	if _, err := m.RegionMut(tiles.At(0, 0), tiles.Ext(2, 1)); err != nil {
		fmt.Fprintf(out, "\nmutable region (0,0)+2×1 rejected:\n  %v\n", err)
	}
	for _, b := range m.Borrows() {
		fmt.Fprintf(out, "  live borrow %v\n", b)
	}
	r.Release()

	w, err := m.RegionMut(tiles.At(0, 0), tiles.Ext(2, 1))
	if err != nil {
		return err
	}
	if err := w.ClearTo('#'); err != nil {
		return err
	}
	w.Release()
	fmt.Fprintf(out, "\nafter releasing the region, (0,0)+2×1 is writable:\n")
	if err := d.Text(out, m); err != nil {
		return err
	}
	return m.Check()
}
