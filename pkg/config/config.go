// Package config loads dockyard settings from TOML.
//
// A config file has four optional sections:
//
//	[workspace]
//	header_side = "top"
//	auto_prune_when_empty = true
//	can_split = true
//	header_extent = 28
//	auto_close_when_empty = true
//
//	[tabs]
//	closable = true
//	draggable = true
//	externalizable = true
//
//	[extraction]
//	enabled = true
//	width = 640
//	height = 480
//
//	[log]
//	level = "info"
//
// Missing keys keep their [Default] values. Unknown keys are rejected so
// typos do not pass silently.
package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dnd"
	"github.com/matzehuels/dockyard/pkg/errors"
)

const appName = "dockyard"

// Config is the full set of user settings.
type Config struct {
	Workspace  Workspace  `toml:"workspace"`
	Tabs       Tabs       `toml:"tabs"`
	Extraction Extraction `toml:"extraction"`
	Log        Log        `toml:"log"`
}

// Workspace mirrors [dock.Defaults].
type Workspace struct {
	HeaderSide         string `toml:"header_side"`
	AutoPruneWhenEmpty bool   `toml:"auto_prune_when_empty"`
	CanSplit           bool   `toml:"can_split"`
	HeaderExtent       int    `toml:"header_extent"`
	AutoCloseWhenEmpty bool   `toml:"auto_close_when_empty"`
}

// Tabs holds the flags new dockables are created with.
type Tabs struct {
	Closable       bool `toml:"closable"`
	Draggable      bool `toml:"draggable"`
	Externalizable bool `toml:"externalizable"`
}

// Extraction controls tearing dockables out into floating windows.
type Extraction struct {
	Enabled bool `toml:"enabled"`
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := dock.DefaultDefaults()
	return Config{
		Workspace: Workspace{
			HeaderSide:         d.HeaderSide.String(),
			AutoPruneWhenEmpty: d.AutoPruneWhenEmpty,
			CanSplit:           d.CanSplit,
			HeaderExtent:       d.HeaderExtent,
			AutoCloseWhenEmpty: d.AutoCloseWhenEmpty,
		},
		Tabs:       Tabs{Closable: true, Draggable: true, Externalizable: true},
		Extraction: Extraction{Enabled: true, Width: 640, Height: 480},
		Log:        Log{Level: "info"},
	}
}

// Load reads path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of [Default] and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath] if there is one, and returns
// [Default] otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath returns $XDG_CONFIG_HOME/dockyard/config.toml, falling back to
// ~/.config/dockyard/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate checks value ranges. It returns an INVALID_CONFIG error naming the
// first offending key.
func (c Config) Validate() error {
	if side, ok := dock.ParseSide(c.Workspace.HeaderSide); !ok || side == dock.SideNone {
		return errors.New(errors.ErrCodeInvalidConfig, "workspace.header_side: %q is not one of top, bottom, left, right", c.Workspace.HeaderSide)
	}
	if c.Workspace.HeaderExtent <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workspace.header_extent: must be positive, got %d", c.Workspace.HeaderExtent)
	}
	if c.Extraction.Width <= 0 || c.Extraction.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "extraction: size must be positive, got %dx%d", c.Extraction.Width, c.Extraction.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "log.level: %q is not a log level", c.Log.Level)
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Defaults converts the [workspace] section. c must be valid.
func (c Config) Defaults() dock.Defaults {
	side, _ := dock.ParseSide(c.Workspace.HeaderSide)
	return dock.Defaults{
		HeaderSide:         side,
		AutoPruneWhenEmpty: c.Workspace.AutoPruneWhenEmpty,
		CanSplit:           c.Workspace.CanSplit,
		HeaderExtent:       c.Workspace.HeaderExtent,
		AutoCloseWhenEmpty: c.Workspace.AutoCloseWhenEmpty,
	}
}

// LogLevel returns the parsed [log] level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// WorkspaceOptions returns the workspace options described by c.
func (c Config) WorkspaceOptions() []dock.Option {
	return []dock.Option{dock.WithDefaults(c.Defaults())}
}

// DockableOptions returns the flags new dockables should be created with.
func (c Config) DockableOptions() []dock.DockableOption {
	return []dock.DockableOption{
		dock.WithClosable(c.Tabs.Closable),
		dock.WithDraggable(c.Tabs.Draggable),
		dock.WithExternalizable(c.Tabs.Externalizable && c.Extraction.Enabled),
	}
}

// EngineOptions returns the drag engine options described by c. Stage
// factories are not configurable and are passed separately.
func (c Config) EngineOptions() []dnd.Option {
	return []dnd.Option{dnd.WithExtractionSize(c.Extraction.Width, c.Extraction.Height)}
}
