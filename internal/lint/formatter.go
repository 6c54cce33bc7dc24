package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	p := &printer{w: w}
	p.printf("Linting site definition: %s\n", sourceOrDefault(result.Source))
	p.println(strings.Repeat("━", 60))
	p.println()

	for _, issue := range result.Issues {
		f.formatIssue(p, issue)
		p.println()
	}

	p.println(strings.Repeat("━", 60))
	p.printf("Results:\n")
	p.printf("  %d sidebar entr%s checked\n", result.Entries, plural(result.Entries, "y", "ies"))
	if result.Documents > 0 {
		p.printf("  %d content document%s indexed\n", result.Documents, plural(result.Documents, "", "s"))
	}
	if n := result.ErrorCount(); n > 0 {
		p.printf("  %d error%s (breaks the site)\n", n, plural(n, "", "s"))
	}
	if n := result.WarningCount(); n > 0 {
		p.printf("  %d warning%s (should fix)\n", n, plural(n, "", "s"))
	}
	if n := result.InfoCount(); n > 0 {
		p.printf("  %d info\n", n)
	}
	p.println()

	switch {
	case result.HasErrors():
		p.println("❌ Site definition has errors.")
	case result.HasWarnings():
		p.println("⚠️  Site definition has warnings.")
	case len(result.Issues) > 0:
		p.println("ℹ️  All issues are informational.")
	default:
		p.println("✨ Site definition passes linting!")
	}
	return p.err
}

func (f *TextFormatter) formatIssue(p *printer, issue Issue) {
	var icon string
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	case SeverityInfo:
		icon = "ℹ"
	}
	p.printf("%s %s\n", icon, issue.Location)
	p.printf("  %s [%s]: %s\n", issue.Severity, issue.Rule, issue.Message)
	if issue.Explanation != "" {
		for _, line := range strings.Split(strings.TrimSpace(issue.Explanation), "\n") {
			p.printf("  %s\n", line)
		}
	}
	if issue.Fix != "" {
		p.printf("  Fix: %s\n", issue.Fix)
	}
}

// printer remembers the first write error so formatting code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, args...)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	Entries      int         `json:"entries"`
	Documents    int         `json:"documents,omitempty"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Location    string `json:"location"`
	Severity    string `json:"severity"`
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	output := JSONOutput{
		Source:       sourceOrDefault(result.Source),
		Entries:      result.Entries,
		Documents:    result.Documents,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			Location:    issue.Location,
			Severity:    issue.Severity.Label(),
			Rule:        issue.Rule,
			Message:     issue.Message,
			Explanation: issue.Explanation,
			Fix:         issue.Fix,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

func sourceOrDefault(s string) string {
	if s == "" {
		return "(built-in)"
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
