package lint

import (
	"strings"

	"github.com/echolabx/docsite/internal/content"
	"github.com/echolabx/docsite/internal/site"
)

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo marks observations that need no action.
	SeverityInfo Severity = iota
	// SeverityWarning marks issues the external renderer tolerates.
	SeverityWarning
	// SeverityError marks issues that break the site build or its navigation.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Label is the lowercase severity name used in JSON and metrics.
func (s Severity) Label() string { return strings.ToLower(s.String()) }

// Issue represents a single linting problem in a site definition.
type Issue struct {
	Location    string   // Where the issue is, e.g. "sidebar[1].items[0]" or "social.github"
	Severity    Severity // Issue severity level
	Rule        string   // Rule identifier (e.g., "nav-link")
	Message     string   // Brief description of the issue
	Explanation string   // Detailed explanation with context
	Fix         string   // Suggested fix
}

// Result contains all issues found during linting.
type Result struct {
	Issues []Issue
	// Source names the linted site definition.
	Source string
	// Entries is the number of sidebar entries checked.
	Entries int
	// Documents is the size of the content index, 0 without one.
	Documents int
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.count(SeverityError) > 0 }

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool { return r.count(SeverityWarning) > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// InfoCount returns the number of info-level issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Rule checks one aspect of a site definition. Rules must not modify cfg.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check validates cfg and returns any issues found.
	Check(cfg *site.Config) []Issue
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings and infos, only reporting errors.
	Quiet bool

	// Source names the site definition in reports.
	Source string

	// Index enables the nav-content rule.
	Index *content.Index
}
