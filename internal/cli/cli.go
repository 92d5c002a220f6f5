// Package cli implements the canvas command-line interface.
//
// This package provides commands for rendering scene documents to images,
// applying composition templates, inspecting canvas dimensions, serving the
// HTTP preview API, and managing the asset cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/creatorlab/canvas/pkg/buildinfo"
	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/config"
	"github.com/creatorlab/canvas/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "canvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		cfg: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the loaded configuration.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Canvas composes percent-based scenes into exportable images",
		Long:         `Canvas is a placement and composition engine: it arranges media assets on a virtual canvas using resolution-independent percent coordinates and renders the result to PNG or JPEG at any scale.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigPath(), "path to the TOML config file")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.dimensionsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(cmd, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func (c *CLI) newCache(cmd *cobra.Command, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.cfg
	if cfg.Cache.Backend == "file" || cfg.Cache.Backend == "" && cfg.Cache.Redis.Addr == "" {
		if cfg.Cache.Dir == "" {
			dir, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			cfg.Cache.Dir = dir
		}
	}
	return cfg.OpenCache(cmd.Context())
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/canvas/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// defaultConfigPath is ~/.config/canvas/canvas.toml, or empty when no home
// directory exists. A missing file loads defaults.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, appName+".toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, appName+".toml")
}
