// Package generator runs one emission: resolve the site definition, expand it
// against the content collection when one is configured, write the target
// configuration and record what was produced.
package generator

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/echolabx/docsite/internal/config"
	"github.com/echolabx/docsite/internal/content"
	"github.com/echolabx/docsite/internal/emit"
	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/manifest"
	"github.com/echolabx/docsite/internal/metrics"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"

	// Built-in targets.
	_ "github.com/echolabx/docsite/internal/emit/hextra"
	_ "github.com/echolabx/docsite/internal/emit/starlight"
)

// Options override the configuration for one run.
type Options struct {
	// Target overrides output.target.
	Target string
	// Output overrides output.path. When Target is overridden and Output is
	// empty, the target's default file name is used.
	Output string
	// Manifest, when set, is where the run manifest is written.
	Manifest string
}

// Result describes a completed emission.
type Result struct {
	Target   string
	Path     string
	Bytes    int
	Site     *site.Config
	Index    *content.Index
	Manifest *manifest.EmitManifest
	Duration time.Duration
}

// Generator emits site configurations for one loaded docsite.yaml.
type Generator struct {
	config   *config.Config
	recorder metrics.Recorder
}

// NewGenerator creates a generator for cfg.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{config: cfg, recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder. A nil recorder is ignored.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// Prepare resolves the site definition and, when a content directory is
// configured, indexes it and expands autogenerated groups. The returned site
// is a copy; the resolved definition is not modified.
func (g *Generator) Prepare() (*site.Config, *content.Index, error) {
	s, err := config.ResolveSite(g.config)
	if err != nil {
		return nil, nil, err
	}
	if g.config.Content.Dir == "" {
		return s, nil, nil
	}
	idx, err := content.Build(g.config.ResolvePath(g.config.Content.Dir))
	if err != nil {
		return nil, nil, err
	}
	expanded := *s
	expanded.Sidebar = idx.Expand(s.Sidebar)
	return &expanded, idx, nil
}

// Generate performs one emission.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	name, path, err := g.destination(opts)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	log := slog.With(logfields.RunID(runID), logfields.Target(string(name)))

	res, err := g.generate(name, path, opts)
	elapsed := time.Since(start)
	if err != nil {
		g.recorder.ObserveEmit(string(name), elapsed, metrics.ResultFailure)
		log.Error("Emission failed", logfields.Error(err))
		return nil, err
	}
	res.Duration = elapsed
	g.recorder.ObserveEmit(string(name), elapsed, metrics.ResultSuccess)
	g.recorder.SetSidebarEntries(nav.Count(res.Site.Sidebar))

	if res.Manifest != nil {
		res.Manifest.ID = runID
		res.Manifest.Duration = elapsed.Milliseconds()
		if err := res.Manifest.WriteFile(opts.Manifest); err != nil {
			return nil, derrors.FileSystemError("failed to write manifest").WithCause(err).
				WithContext("path", opts.Manifest).Build()
		}
		log.Debug("Wrote manifest", logfields.Path(opts.Manifest))
	}
	log.Info("Emitted site configuration",
		logfields.Path(res.Path),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return res, nil
}

func (g *Generator) generate(name config.Target, path string, opts Options) (*Result, error) {
	s, idx, err := g.Prepare()
	if err != nil {
		return nil, err
	}
	t, err := emit.Get(string(name))
	if err != nil {
		return nil, err
	}
	data, err := emit.WriteFile(path, t, s)
	if err != nil {
		return nil, err
	}
	res := &Result{Target: string(name), Path: path, Bytes: len(data), Site: s, Index: idx}
	if opts.Manifest == "" {
		return res, nil
	}
	m, err := manifest.New(string(name), path, s, data)
	if err != nil {
		return nil, derrors.InternalError("failed to build manifest").WithCause(err).Build()
	}
	if g.config.SiteFile != "" {
		m.Inputs.SiteFile = g.config.ResolvePath(g.config.SiteFile)
	}
	if idx != nil {
		m.AttachContent(idx, s)
		for _, link := range m.Unresolved {
			slog.Warn("Sidebar link does not resolve to a document", logfields.Link(link))
		}
	}
	res.Manifest = m
	return res, nil
}

// destination picks the target and output path from opts and configuration.
func (g *Generator) destination(opts Options) (config.Target, string, error) {
	name := g.config.Output.Target
	path := g.config.Output.Path
	if opts.Target != "" {
		name = config.NormalizeTarget(opts.Target)
		if name == "" {
			return "", "", derrors.ValidationError("unknown emit target").
				WithContext("target", opts.Target).
				WithContext("valid", config.ValidTargets()).Build()
		}
		if name != g.config.Output.Target {
			path = name.DefaultPath()
		}
	}
	if opts.Output != "" {
		abs, err := filepath.Abs(opts.Output)
		if err != nil {
			return "", "", derrors.FileSystemError("failed to resolve output path").WithCause(err).Build()
		}
		return name, abs, nil
	}
	if path == "" {
		path = name.DefaultPath()
	}
	return name, g.config.ResolvePath(path), nil
}
