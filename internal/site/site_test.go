package site

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/echolabx/docsite/internal/nav"
)

func TestEchoProxy_Structure(t *testing.T) {
	cfg := EchoProxy()

	assert.Equal(t, "EchoProxy", cfg.Title)
	require.NotNil(t, cfg.Logo)
	assert.Equal(t, "./src/assets/favicon.svg", cfg.Logo.Src)

	var groups []string
	for _, e := range cfg.Sidebar {
		g, ok := e.(*nav.Group)
		require.True(t, ok, "top-level entries are groups")
		groups = append(groups, g.Label)
	}
	assert.Equal(t, []string{"Start Here", "Debug on Devices", "Map Mock", "EchoSend", "Deep in EchoScript"}, groups)

	dev := cfg.Sidebar[1].(*nav.Group)
	assert.Equal(t, []string{"/device/macos", "/device/windows", "/device/ios", "/device/android"}, nav.Links(dev.Items))
}

func TestEchoProxy_WellFormed(t *testing.T) {
	cfg := EchoProxy()

	assert.NotEmpty(t, cfg.Title)
	for platform, raw := range cfg.Social {
		u, err := url.Parse(raw)
		require.NoError(t, err, platform)
		assert.Equal(t, "https", u.Scheme)
		assert.NotEmpty(t, u.Host)
	}
	for _, link := range nav.Links(cfg.Sidebar) {
		assert.True(t, strings.HasPrefix(link, "/"), link)
	}
}

func TestEchoProxy_HeadEntries(t *testing.T) {
	cfg := EchoProxy()
	require.Len(t, cfg.Head, 3)

	assert.Equal(t, "meta", cfg.Head[0].Tag)
	assert.Equal(t, "google-site-verification", cfg.Head[0].Attrs["name"])
	assert.Equal(t, true, cfg.Head[1].Attrs["async"])
	assert.Contains(t, cfg.Head[1].Attrs["src"], "id=G-ZJY6EE5V5M")
	assert.Contains(t, cfg.Head[2].Content, "gtag('config', 'G-ZJY6EE5V5M');")
}

func TestEchoProxy_FreshValuePerCall(t *testing.T) {
	a := EchoProxy()
	a.Title = "mutated"
	a.Sidebar[0].(*nav.Group).Label = "mutated"

	b := EchoProxy()
	assert.Equal(t, "EchoProxy", b.Title)
	assert.Equal(t, "Start Here", b.Sidebar[0].(*nav.Group).Label)
}

func TestClone_IsDeep(t *testing.T) {
	orig := EchoProxy()
	orig.EditLink = &EditLink{BaseURL: "https://github.com/echolabx/echoproxy/tree/main/docs"}
	cp := orig.Clone()

	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.Social["github"] = "https://example.com"
	cp.Head[0].Attrs["name"] = "changed"
	cp.CustomCSS[0] = "changed"
	cp.Components["SiteTitle"] = "changed"
	cp.Logo.Src = "changed"
	cp.EditLink.BaseURL = "changed"
	cp.Astro.Tailwind.ApplyBaseStyles = true
	cp.Sidebar[0].(*nav.Group).Items[0].(*nav.Item).Link = "/changed"

	fresh := EchoProxy()
	fresh.EditLink = &EditLink{BaseURL: "https://github.com/echolabx/echoproxy/tree/main/docs"}
	if diff := cmp.Diff(fresh, orig); diff != "" {
		t.Fatalf("mutating the clone changed the original:\n%s", diff)
	}
}

func TestConfig_JSONFlattensOptions(t *testing.T) {
	data, err := json.Marshal(EchoProxy())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "EchoProxy", raw["title"])
	assert.Contains(t, raw, "customCss")
	assert.Contains(t, raw, "astro")
	assert.NotContains(t, raw, "Options")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	orig := EchoProxy()
	data, err := yaml.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "customCss:")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	if diff := cmp.Diff(orig, &back); diff != "" {
		t.Fatalf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}
