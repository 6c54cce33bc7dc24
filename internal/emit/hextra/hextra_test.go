package hextra

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/echolabx/docsite/internal/emit"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

func TestRegistered(t *testing.T) {
	got, err := emit.Get(Name)
	require.NoError(t, err)
	assert.Equal(t, ".yaml", got.Extension())
}

func TestSidebarMenu_ParentsAndWeights(t *testing.T) {
	menu := SidebarMenu(nav.Entries{
		nav.NewGroup("Start Here", nav.NewItem("Getting Started", "/start")),
		nav.NewGroup("Map Mock",
			nav.NewItem("Map Mock", "/mapmock"),
			nav.NewGroup("Deep", nav.NewItem("Language", "/echoscript")),
		),
		nav.NewAutogenerated("Reference", "reference/"),
	})
	require.Len(t, menu, 7)

	assert.Equal(t, map[string]any{"name": "Start Here", "weight": 10, "identifier": "sidebar-1"}, menu[0])
	assert.Equal(t, map[string]any{"name": "Getting Started", "weight": 10, "identifier": "sidebar-1-1", "parent": "sidebar-1", "pageRef": "/start"}, menu[1])
	assert.Equal(t, "sidebar-2", menu[2]["identifier"])
	assert.Equal(t, 20, menu[2]["weight"])
	assert.Equal(t, "sidebar-2", menu[3]["parent"])
	assert.Equal(t, "sidebar-2-2", menu[4]["identifier"])
	assert.Equal(t, 20, menu[4]["weight"])
	assert.Equal(t, "sidebar-2-2", menu[5]["parent"])
	assert.Equal(t, "/reference", menu[6]["pageRef"])
	assert.Equal(t, 30, menu[6]["weight"])
}

func TestSidebarMenu_RepeatedLabelsKeepDistinctKeys(t *testing.T) {
	menu := SidebarMenu(nav.Entries{
		nav.NewGroup("Guides", nav.NewItem("Overview", "/guides")),
		nav.NewGroup("Reference", nav.NewItem("Overview", "/reference")),
	})
	require.Len(t, menu, 4)

	keys := map[string]string{}
	for _, m := range menu {
		id, ok := m["identifier"].(string)
		require.True(t, ok, "entry %v has no identifier", m)
		_, dup := keys[id]
		assert.False(t, dup, "identifier %s used twice", id)
		keys[id] = m["name"].(string)
	}
	assert.Equal(t, "sidebar-1-1", menu[1]["identifier"])
	assert.Equal(t, "/guides", menu[1]["pageRef"])
	assert.Equal(t, "sidebar-2-1", menu[3]["identifier"])
	assert.Equal(t, "/reference", menu[3]["pageRef"])
}

func TestMainMenu_SortedSocialLinks(t *testing.T) {
	menu := MainMenu(map[string]string{
		"mastodon": "https://m.example/@x",
		"github":   "https://github.com/echolabx/echoproxy",
	})
	require.Len(t, menu, 3)
	assert.Equal(t, "Search", menu[0]["name"])
	assert.Equal(t, "Github", menu[1]["name"])
	assert.Equal(t, "github", menu[1]["params"].(map[string]any)["icon"])
	assert.Equal(t, "Mastodon", menu[2]["name"])
	assert.Equal(t, 101, menu[2]["weight"])
}

func TestEmit_EchoProxy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Target{}.Emit(&buf, site.EchoProxy()))

	var doc struct {
		Title  string `yaml:"title"`
		Module struct {
			Imports []struct {
				Path string `yaml:"path"`
			} `yaml:"imports"`
		} `yaml:"module"`
		Params struct {
			Navbar struct {
				DisplayLogo bool `yaml:"displayLogo"`
				Logo        struct {
					Path string `yaml:"path"`
				} `yaml:"logo"`
			} `yaml:"navbar"`
		} `yaml:"params"`
		Menu struct {
			Main    []map[string]any `yaml:"main"`
			Sidebar []map[string]any `yaml:"sidebar"`
		} `yaml:"menu"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "EchoProxy", doc.Title)
	require.Len(t, doc.Module.Imports, 1)
	assert.Equal(t, ModulePath, doc.Module.Imports[0].Path)
	assert.True(t, doc.Params.Navbar.DisplayLogo)
	assert.Equal(t, "./src/assets/favicon.svg", doc.Params.Navbar.Logo.Path)
	assert.Len(t, doc.Menu.Main, 2)
	assert.Len(t, doc.Menu.Sidebar, 15)
	assert.NotContains(t, buf.String(), "googletagmanager")
}

func TestBuildConfig_EditLinkAndSite(t *testing.T) {
	cfg := &site.Config{
		Options: site.Options{Title: "Docs", EditLink: &site.EditLink{BaseURL: "https://github.com/x/y/edit/main/docs"}},
		Astro:   &site.Astro{Site: "https://docs.example.com"},
	}
	root := BuildConfig(cfg)
	assert.Equal(t, "https://docs.example.com", root["baseURL"])
	params := root["params"].(map[string]any)
	assert.Equal(t, map[string]any{"enable": true, "base": "https://github.com/x/y/edit/main/docs"}, params["editURL"])
	assert.Equal(t, map[string]any{"displayTitle": true, "displayLogo": false}, params["navbar"])
}

func TestBuildConfig_DoesNotMutateInput(t *testing.T) {
	cfg := site.EchoProxy()
	before := cfg.Clone()
	_ = BuildConfig(cfg)
	assert.Equal(t, before, cfg)
}
