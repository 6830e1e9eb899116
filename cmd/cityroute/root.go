package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/internal/logging"
	"github.com/katalvlaran/cityroute/internal/render"
	"github.com/katalvlaran/cityroute/planner"
)

// app carries the global flags and the state built from them.
type app struct {
	configPath string
	logLevel   string
	jsonLogs   bool
	plain      bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger  *slog.Logger
	planner *planner.Planner
	render  *render.Renderer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "cityroute",
		Short: "Explore a city road network",
		Long: `cityroute loads a network of locations and roads (the built-in
ten-city demonstration network unless --config names a YAML file) and
answers queries over it.

Examples:
  cityroute sorted
  cityroute bfs Colombo
  cityroute path Matara Jaffna
  cityroute shell`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML configuration file (default: built-in network)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false,
		"Write logs as JSON")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false,
		"Plain tab-separated output for scripting")

	root.AddCommand(
		a.locationsCmd(),
		a.sortedCmd(),
		a.treeCmd(),
		a.connectionsCmd(),
		a.statsCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.pathCmd(),
		a.shellCmd(),
		a.generateCmd(),
	)

	return root
}

// setup loads configuration, builds the logger and seeds the planner.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return a.fail(err)
		}
		cfg = loaded
	}

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return a.fail(err)
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    a.jsonLogs || cfg.Log.JSON,
		Service: "cityroute",
		Output:  a.errOut,
	})

	mode := render.Styled
	if a.plain {
		mode = render.Plain
	}
	a.render = render.New(a.out, a.errOut, mode)

	p, err := planner.New(planner.WithLogger(a.logger), planner.WithSeed(cfg.Seed))
	if err != nil {
		return a.fail(fmt.Errorf("seeding network: %w", err))
	}
	a.planner = p
	a.logger.Debug("network ready", "locations", p.LocationCount(), "roads", p.RoadCount())

	return nil
}

// fail reports err on the error stream and returns it so the command
// exits non-zero.
func (a *app) fail(err error) error {
	if a.render != nil {
		a.render.Error(err)
	} else {
		fmt.Fprintf(a.errOut, "ERROR: %v\n", err)
	}

	return err
}
