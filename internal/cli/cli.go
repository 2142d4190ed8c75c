package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mklettner/dropzone/pkg/buildinfo"
	"github.com/mklettner/dropzone/pkg/hover"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "dropzone"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dropzone resolves drag-and-drop hover positions to drop actions",
		Long:         `Dropzone is the hover classification engine of a block editor: given a pointer position over a block, it decides whether the dragged block should land above, below, beside or inline with the hovered one, and at which nesting level of the row/cell hierarchy.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// newEngine builds a hover engine, loading custom matrices from the given
// TOML file when the path is non-empty.
func (c *CLI) newEngine(matricesPath string) (*hover.Engine, error) {
	opts := []hover.Option{hover.WithLogger(c.Logger)}
	if matricesPath != "" {
		custom, err := hover.LoadMatrixFile(matricesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hover.WithMatrices(custom))
	}
	return hover.New(opts...)
}
