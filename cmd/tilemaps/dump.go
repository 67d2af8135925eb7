package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/tiles/dump"
	"github.com/npillmayer/tiles/scene"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <scene.toml>",
	Short: "Build a scene and dump its regions and map",
	Long: `Build the map of a scene description, dump every region of the scene,
then release the regions and dump the whole map.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().String("format", "text", "output format (text|html)")
	dumpCmd.Flags().Bool("ruler", false, "print column and row numbers (text format)")
}

var palette = map[rune]*color.Color{
	'#': color.New(color.FgRed),
	'+': color.New(color.FgYellow),
	'~': color.New(color.FgBlue),
	'@': color.New(color.FgGreen, color.Bold),
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "html" {
		return fmt.Errorf("invalid format %q", format)
	}
	ruler, err := cmd.Flags().GetBool("ruler")
	if err != nil {
		return err
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	sc, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	b, err := scene.Build(sc)
	if err != nil {
		return err
	}
	for _, err := range b.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	d := dump.New[rune]()
	d.Config = dump.ConfigFromTerminal()
	d.NoColor = !colored
	d.Ruler = ruler
	d.Color = dump.Palette(palette)
	d.Class = func(r rune) string {
		switch r {
		case '#':
			return "wall"
		case '+':
			return "door"
		}
		return ""
	}

	out := cmd.OutOrStdout()
	for _, v := range b.Regions {
		kind := "region"
		if v.Mutable {
			kind = "mutable region"
		}
		if err := section(out, d, format, fmt.Sprintf("%s %q at %v", kind, v.Name, v.Bounds), v.Grid); err != nil {
			return err
		}
	}
	b.Release()
	return section(out, d, format, fmt.Sprintf("%s map %v", b.Kind, b.Map.Extent()), b.Map)
}

func section(w io.Writer, d *dump.Dumper[rune], format, title string, g dump.Grid[rune]) error {
	if format == "html" {
		fmt.Fprintf(w, "<h2>%s</h2>\n", html.EscapeString(title))
		if err := d.HTML(w, g); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	fmt.Fprintf(w, "%s:\n", title)
	if err := d.Text(w, g); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
