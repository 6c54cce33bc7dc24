package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/echolabx/docsite/internal/config"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/metrics"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// Out receives command output; logs go to stderr.
	Out io.Writer
}

// NewGlobal returns the default global context writing to stdout.
func NewGlobal() *Global {
	return &Global{Out: os.Stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Emit the site configuration for the configured target"`
	Lint     LintCmd     `cmd:"" help:"Check the site definition for structural problems"`
	Render   RenderCmd   `cmd:"" help:"Render the sidebar as an HTML preview"`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON Schema of the site definition"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration and site definition"`
	History  HistoryCmd  `cmd:"" help:"Show committed versions of the site definition and how the sidebar changed"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	return nil
}

func newLogger(level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// loadConfig loads the configuration named by --config and applies its
// logging section. --verbose keeps debug logging regardless of the file.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)
	return cfg, nil
}

// metricsSink returns the recorder for cfg and a flush function writing the
// textfile when one is configured.
func metricsSink(cfg *config.Config) (metrics.Recorder, func()) {
	if cfg.Metrics.Textfile == "" {
		return metrics.NoopRecorder{}, func() {}
	}
	path := cfg.ResolvePath(cfg.Metrics.Textfile)
	pr := metrics.NewPrometheusRecorder(nil)
	return pr, func() {
		if err := pr.WriteTextfile(path); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(path), logfields.Error(err))
		}
	}
}
