package commands

import (
	"fmt"

	"github.com/echolabx/docsite/internal/config"
	"github.com/echolabx/docsite/internal/content"
	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Format     string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet      bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	ContentDir string `name:"content-dir" help:"Check sidebar links against this content directory; overrides content.dir"`
}

func (l *LintCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(global, root)
	if err != nil {
		return err
	}
	s, err := config.ResolveSite(cfg)
	if err != nil {
		return err
	}

	lcfg := &lint.Config{Quiet: l.Quiet, Source: cfg.ResolvePath(cfg.SiteFile)}
	dir := cfg.ResolvePath(cfg.Content.Dir)
	if l.ContentDir != "" {
		dir = l.ContentDir
	}
	if dir != "" {
		idx, err := content.Build(dir)
		if err != nil {
			return err
		}
		lcfg.Index = idx
	}

	result := lint.NewLinter(lcfg).Lint(s)

	recorder, flush := metricsSink(cfg)
	recorder.SetLintIssues(lint.SeverityInfo.Label(), result.InfoCount())
	recorder.SetLintIssues(lint.SeverityWarning.Label(), result.WarningCount())
	recorder.SetLintIssues(lint.SeverityError.Label(), result.ErrorCount())
	flush()

	if err := lint.NewFormatter(l.Format).Format(global.Out, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	if result.HasErrors() {
		return derrors.ValidationError("site definition has lint errors").
			WithContext("errors", result.ErrorCount()).Build()
	}
	return nil
}
