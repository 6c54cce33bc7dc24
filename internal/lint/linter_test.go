package lint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

func brokenConfig() *site.Config {
	return &site.Config{Options: site.Options{
		Title:  "",
		Social: map[string]string{"github": "https://github.com/echolabx/echoproxy"},
		Sidebar: nav.Entries{
			nav.NewGroup("Start Here", nav.NewItem("Getting Started", "/start")),
			nav.NewGroup("Again", nav.NewItem("Start", "/start")),
		},
	}}
}

func TestLinter_Rules(t *testing.T) {
	assert.Equal(t, []string{"site-title", "social-url", "nav-link", "nav-group", "nav-duplicate-link", "head-entry"},
		NewLinter(nil).Rules())
	assert.Contains(t, NewLinter(&Config{Index: testIndex(t)}).Rules(), "nav-content")
}

func TestLinter_Counts(t *testing.T) {
	result := NewLinter(&Config{Source: "site.yaml"}).Lint(brokenConfig())
	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, 1, result.WarningCount())
	assert.Equal(t, 0, result.InfoCount())
	assert.True(t, result.HasErrors())
	assert.Equal(t, 4, result.Entries)
}

func TestLinter_QuietKeepsErrorsOnly(t *testing.T) {
	result := NewLinter(&Config{Quiet: true}).Lint(brokenConfig())
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "site-title", result.Issues[0].Rule)
}

func TestLinter_DoesNotModifyInput(t *testing.T) {
	cfg := site.EchoProxy()
	cfg.Sidebar = append(cfg.Sidebar, nav.NewAutogenerated("Reference", "reference"))
	before := cfg.Clone()
	_ = NewLinter(&Config{Index: testIndex(t)}).Lint(cfg)
	assert.Equal(t, before, cfg)
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, NewLinter(&Config{Source: "site.yaml"}).Lint(brokenConfig())))
	out := buf.String()
	assert.Contains(t, out, "Linting site definition: site.yaml")
	assert.Contains(t, out, "✗ title\n  ERROR [site-title]: Site title is empty")
	assert.Contains(t, out, "⚠ sidebar[1].items[0]")
	assert.Contains(t, out, "  4 sidebar entries checked")
	assert.Contains(t, out, "  1 error (breaks the site)")
	assert.Contains(t, out, "❌ Site definition has errors.")

	buf.Reset()
	require.NoError(t, NewTextFormatter().Format(&buf, NewLinter(nil).Lint(site.EchoProxy())))
	assert.Contains(t, buf.String(), "(built-in)")
	assert.Contains(t, buf.String(), "✨ Site definition passes linting!")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("JSON").Format(&buf, NewLinter(nil).Lint(brokenConfig())))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.ErrorCount)
	assert.Equal(t, 1, out.WarningCount)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "error", out.Issues[0].Severity)
	assert.Equal(t, "nav-duplicate-link", out.Issues[1].Rule)
}
