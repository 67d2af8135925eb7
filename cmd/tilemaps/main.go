// Command tilemaps builds tile maps from scene descriptions and dumps them.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "tilemaps",
	Short: "Build and inspect tile maps",
	Long:  `tilemaps builds tile maps from TOML scene descriptions and dumps maps and regions for inspection`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupTracing(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(demoCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("trace-level", "error", "trace level (error|info|debug)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupTracing directs tracing of package tiles to the standard logger.
func setupTracing(cmd *cobra.Command) error {
	levelStr, err := cmd.Root().PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	var level tracing.TraceLevel
	switch levelStr {
	case "error":
		level = tracing.LevelError
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("invalid trace level %q", levelStr)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	return nil
}

// useColor evaluates the --color flag and switches colored output on or off.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	var on bool
	switch colorFlag {
	case "on":
		on = true
	case "off":
		on = false
	case "auto":
		on = isTerminal(os.Stdout)
	default:
		return false, fmt.Errorf("invalid color mode %q", colorFlag)
	}
	color.NoColor = !on
	return on, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
