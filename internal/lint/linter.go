// Package lint checks site definitions for structural problems the external
// renderer would reject or silently mishandle.
package lint

import (
	"log/slog"

	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

// Linter runs a fixed set of rules over a site definition.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a linter with the default rules, plus nav-content when a
// content index is configured.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{}
	}
	rules := []Rule{
		&SiteTitleRule{},
		&SocialURLRule{},
		&NavLinkRule{},
		&NavGroupRule{},
		&DuplicateLinkRule{},
		&HeadEntryRule{},
	}
	if cfg.Index != nil {
		rules = append(rules, &ContentRule{Index: cfg.Index})
	}
	return &Linter{cfg: cfg, rules: rules}
}

// Rules returns the names of the active rules in execution order.
func (l *Linter) Rules() []string {
	out := make([]string, len(l.rules))
	for i, r := range l.rules {
		out[i] = r.Name()
	}
	return out
}

// Lint runs every rule against cfg.
func (l *Linter) Lint(cfg *site.Config) *Result {
	groups, items := nav.Count(cfg.Sidebar)
	result := &Result{Issues: []Issue{}, Source: l.cfg.Source, Entries: groups + items}
	if l.cfg.Index != nil {
		result.Documents = l.cfg.Index.Len()
	}
	for _, rule := range l.rules {
		for _, issue := range rule.Check(cfg) {
			if l.cfg.Quiet && issue.Severity != SeverityError {
				continue
			}
			if issue.Rule == "" {
				issue.Rule = rule.Name()
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	slog.Debug("Lint finished", logfields.Count(len(result.Issues)),
		slog.Int("errors", result.ErrorCount()), slog.Int("warnings", result.WarningCount()))
	return result
}
