// Package cli implements the spanviz command-line interface.
//
// The main commands are:
//   - run: solve every input graph with both algorithms and report
//   - stats: print input statistics without solving
//   - visualize: render graphs and spanning forests
//   - serve: expose the solver over HTTP
//   - cache: manage the artifact cache
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML configuration file.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spanviz/spanviz/pkg/buildinfo"
	"github.com/spanviz/spanviz/pkg/cache"
	"github.com/spanviz/spanviz/pkg/config"
	"github.com/spanviz/spanviz/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "spanviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	ConfigPath string

	cfg       config.Config
	cfgLoaded bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "spanviz",
		Short:        "Spanviz computes and compares minimum spanning trees",
		Long:         `Spanviz runs Prim's and Kruskal's algorithms on weighted undirected graphs, compares their costs and work counters, and renders the resulting spanning forests.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "path to TOML config file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Config loads the configuration once, from --config when given and the
// XDG default path otherwise.
func (c *CLI) Config() (config.Config, error) {
	if c.cfgLoaded {
		return c.cfg, nil
	}

	path := c.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Default(), err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	c.cfg = cfg
	c.cfgLoaded = true

	// The --verbose flag wins over the configured level.
	if c.Logger.GetLevel() == LogInfo {
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			c.Logger.SetLevel(level)
		}
	}
	return cfg, nil
}

// newRunner creates a pipeline runner with the configured cache backend.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(cmd, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.Logger), nil
}

func (c *CLI) newCache(cmd *cobra.Command, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg, err := c.Config()
	if err != nil {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(cmd.Context(), cfg.Cache.RedisAddr)
	default:
		dir, err := cfg.Cache.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// parseList parses a comma-separated flag value into a slice, falling
// back to def when empty.
func parseList(s string, def []string) []string {
	if s == "" {
		return def
	}
	return strings.Split(s, ",")
}
