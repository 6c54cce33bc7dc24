package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/echolabx/docsite/internal/generator"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Target   string `short:"t" help:"Emit target (starlight, starlight-json, hextra); overrides output.target"`
	Output   string `short:"o" help:"Output file; overrides output.path"`
	Manifest string `help:"Write a JSON manifest of the run to this path"`
	Watch    bool   `help:"Regenerate when the configuration, site definition or content changes"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	if !g.Watch {
		return g.once(context.Background(), global, root)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := g.once(ctx, global, root); err != nil {
		slog.Error("Initial generation failed", logfields.Error(err))
	}
	paths, err := g.watchPaths(global, root)
	if err != nil {
		return err
	}
	w, err := watch.New(watch.DefaultDebounce, paths...)
	if err != nil {
		return err
	}
	err = w.Run(ctx, func(ctx context.Context) error { return g.once(ctx, global, root) })
	slog.Info("Stopped watching")
	return err
}

// once reloads the configuration and emits, so edits to docsite.yaml apply
// on the next run.
func (g *GenerateCmd) once(ctx context.Context, global *Global, root *CLI) error {
	cfg, err := loadConfig(global, root)
	if err != nil {
		return err
	}
	recorder, flush := metricsSink(cfg)
	defer flush()

	res, err := generator.NewGenerator(cfg).WithRecorder(recorder).Generate(ctx, generator.Options{
		Target:   g.Target,
		Output:   g.Output,
		Manifest: g.Manifest,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(global.Out, "Wrote %s (%s, %d bytes)\n", res.Path, res.Target, res.Bytes)
	return nil
}

func (g *GenerateCmd) watchPaths(global *Global, root *CLI) ([]string, error) {
	cfg, err := loadConfig(global, root)
	if err != nil {
		return nil, err
	}
	paths := []string{root.Config}
	if cfg.SiteFile != "" {
		paths = append(paths, cfg.ResolvePath(cfg.SiteFile))
	}
	if cfg.Content.Dir != "" {
		paths = append(paths, cfg.ResolvePath(cfg.Content.Dir))
	}
	return paths, nil
}
