// Package cli implements the dockyard command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dockyard/pkg/config"
	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dnd"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dockyard"

	// Size the sample workspace is laid out in.
	sampleWidth  = 1200
	sampleHeight = 800
)

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
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads --config, or the default config file when the flag is
// unset, and applies its log level unless --verbose was given.
func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Config = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("configuration loaded", "path", c.configPath, "header_side", cfg.Workspace.HeaderSide)
	return nil
}

// =============================================================================
// Workspace Factory
// =============================================================================

// newWorkspace creates an empty workspace configured from c.Config.
func (c *CLI) newWorkspace() *dock.Workspace {
	opts := append(c.Config.WorkspaceOptions(), dock.WithLogger(c.Logger))
	return dock.NewWorkspace(opts...)
}

// newEngine creates a drag engine for ws that tears dockables out into
// terminal windows when extraction is enabled.
func (c *CLI) newEngine(ws *dock.Workspace, opts ...dnd.Option) *dnd.Engine {
	base := append(c.Config.EngineOptions(), dnd.WithLogger(c.Logger))
	if c.Config.Extraction.Enabled {
		base = append(base, dnd.WithStageFactory(dnd.StageFactoryFunc(newTermWindow)))
	}
	return dnd.NewEngine(ws, append(base, opts...)...)
}
