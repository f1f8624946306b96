// Package cli implements the gridboard command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridboard"
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
	Config *Config
}

// New creates a new CLI instance with a default logger and the config
// loaded from the user config file (defaults when absent).
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		cfg = DefaultConfig()
	}
	c := &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
	if err != nil {
		c.Logger.Warn("ignoring invalid config file", "path", ConfigPath(), "err", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridboard",
		Short:        "Gridboard edits cell layouts on a rectangular grid",
		Long:         `Gridboard is a CLI tool for editing grid layouts: press, drag and drop cells into new positions with overlap-free placement, then validate, store and render the results.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Make the logger reachable from every command's context.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(withLogger(ctx, c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.editCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// openStore creates the layout store selected by backend, falling back to
// the configured default when backend is empty.
func (c *CLI) openStore(ctx context.Context, backend string) (store.Store, error) {
	if backend == "" {
		backend = c.Config.Store.Backend
	}
	switch backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "", "file":
		dir, err := dataDir()
		if err != nil {
			return nil, err
		}
		return store.NewFileStore(filepath.Join(dir, "layouts"))
	case "redis":
		return store.NewRedisStore(ctx, c.Config.Store.RedisURL)
	case "mongo":
		return store.NewMongoStore(ctx, c.Config.Store.MongoURI, c.Config.Store.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, memory, redis or mongo)", backend)
	}
}

// loadLayout resolves a layout from the positional file argument or, with
// --name, from the store. Exactly one source must be given.
func (c *CLI) loadLayout(ctx context.Context, args []string, name, backend string) (*layout.Layout, error) {
	switch {
	case len(args) == 1 && name != "":
		return nil, fmt.Errorf("pass either a layout file or --name, not both")
	case len(args) == 1:
		return layout.ReadLayoutFile(args[0])
	case name != "":
		st, err := c.openStore(ctx, backend)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		l, err := st.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load layout %q: %w", name, err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("a layout file or --name is required")
	}
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the data directory using XDG standard (~/.local/share/gridboard/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// ConfigPath returns the config file path using XDG standard
// (~/.config/gridboard/config.toml).
func ConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
