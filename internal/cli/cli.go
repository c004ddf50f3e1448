// Package cli implements the ggsvg command-line interface.
//
// The render command decodes a YAML scene file (see package scenefile),
// rasterizes it and writes a PNG. Defaults come from an optional TOML file,
// ~/.config/ggsvg/config.toml, and are overridden by flags.
//
// All commands support --verbose (-v) for debug-level logging. Renderer
// warnings such as skipped groups are routed to the same logger.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggsvg"
)

const appName = "ggsvg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	configPath string
}

// New creates a CLI logging to w. Command output other than logs goes to
// out.
func New(w, out io.Writer, level log.Level) *CLI {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	ggsvg.SetLogger(slog.New(l))
	return &CLI{Logger: l, out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ggsvg renders vector scenes to PNG",
		Long:         `ggsvg rasterizes YAML scene descriptions (groups, paths, gradients, patterns, clip paths, masks and filters) into PNG images.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/ggsvg/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	return root
}
