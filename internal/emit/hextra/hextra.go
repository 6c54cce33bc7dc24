// Package hextra emits hugo.yaml for the Hextra Hugo theme.
package hextra

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/echolabx/docsite/internal/emit"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

const (
	Name       = "hextra"
	ModulePath = "github.com/imfing/hextra"
)

func init() { emit.Register(Target{}) }

// Target writes a Hugo site configuration using the Hextra theme module.
type Target struct{}

func (Target) Name() string      { return Name }
func (Target) Extension() string { return ".yaml" }

func (Target) Emit(w io.Writer, cfg *site.Config) error {
	root := BuildConfig(cfg)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to marshal Hugo config: %w", err)
	}
	return enc.Close()
}

// BuildConfig assembles the hugo.yaml document.
func BuildConfig(cfg *site.Config) map[string]any {
	params := map[string]any{
		"navbar": navbarParams(cfg.Logo),
		"search": map[string]any{"enable": true, "type": "flexsearch"},
	}
	if cfg.Description != "" {
		params["description"] = cfg.Description
	}
	if cfg.EditLink != nil && cfg.EditLink.BaseURL != "" {
		params["editURL"] = map[string]any{"enable": true, "base": cfg.EditLink.BaseURL}
	}

	root := map[string]any{
		"title":        cfg.Title,
		"languageCode": "en",
		"module":       map[string]any{"imports": []map[string]any{{"path": ModulePath}}},
		"markup": map[string]any{
			"goldmark": map[string]any{"renderer": map[string]any{"unsafe": true}},
		},
		"params": params,
		"menu": map[string]any{
			"main":    MainMenu(cfg.Social),
			"sidebar": SidebarMenu(cfg.Sidebar),
		},
	}
	if cfg.Astro != nil && cfg.Astro.Site != "" {
		root["baseURL"] = cfg.Astro.Site
	}

	for _, h := range cfg.Head {
		slog.Debug("Head entry has no Hextra equivalent, skipping", slog.String("tag", h.Tag))
	}
	for slot := range cfg.Components {
		slog.Debug("Component override has no Hextra equivalent, skipping", slog.String("slot", slot))
	}
	if len(cfg.CustomCSS) > 0 {
		slog.Debug("Custom CSS must be placed under assets/css/custom.css for Hextra",
			logfields.Count(len(cfg.CustomCSS)))
	}
	return root
}

func navbarParams(logo *site.Logo) map[string]any {
	navbar := map[string]any{"displayTitle": true, "displayLogo": false}
	if logo == nil {
		return navbar
	}
	l := map[string]any{}
	switch {
	case logo.Src != "":
		l["path"] = logo.Src
	case logo.Light != "":
		l["path"] = logo.Light
	}
	if logo.Dark != "" {
		l["dark"] = logo.Dark
	}
	navbar["displayLogo"] = len(l) > 0
	navbar["displayTitle"] = !logo.ReplacesTitle
	if len(l) > 0 {
		navbar["logo"] = l
	}
	return navbar
}

var titleCaser = cases.Title(language.English)

// MainMenu builds the top navigation: search followed by one entry per social
// link, sorted by platform.
func MainMenu(social map[string]string) []map[string]any {
	menu := []map[string]any{
		{"name": "Search", "weight": 1, "params": map[string]any{"type": "search"}},
	}
	platforms := make([]string, 0, len(social))
	for p := range social {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	for i, p := range platforms {
		menu = append(menu, map[string]any{
			"name":   titleCaser.String(p),
			"url":    social[p],
			"weight": 100 + i,
			"params": map[string]any{"icon": strings.ToLower(p)},
		})
	}
	return menu
}

// SidebarMenu flattens the nav tree into Hugo menu entries. Every entry gets
// an identifier derived from its position, since Hugo falls back to the name
// as menu key and labels repeat across groups. Children reference their
// group's identifier as parent. Weights follow display order among siblings.
func SidebarMenu(entries nav.Entries) []map[string]any {
	var menu []map[string]any
	_ = nav.Walk(entries, func(loc nav.Location, e nav.Entry) error {
		idx := loc.Indexes[len(loc.Indexes)-1]
		m := map[string]any{
			"identifier": identifier(loc.Indexes),
			"name":       nav.LabelOf(e),
			"weight":     (idx + 1) * 10,
		}
		if loc.Depth() > 0 {
			m["parent"] = identifier(loc.Indexes[:len(loc.Indexes)-1])
		}
		switch v := e.(type) {
		case *nav.Item:
			m["pageRef"] = v.Link
		case *nav.Group:
			if v.Autogenerate != nil {
				m["pageRef"] = "/" + strings.Trim(v.Autogenerate.Directory, "/")
			}
		}
		menu = append(menu, m)
		return nil
	})
	return menu
}

func identifier(indexes []int) string {
	parts := make([]string, len(indexes))
	for i, n := range indexes {
		parts[i] = strconv.Itoa(n + 1)
	}
	return "sidebar-" + strings.Join(parts, "-")
}
