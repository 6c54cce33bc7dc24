// Package starlight emits Astro Starlight configuration: the plugin options
// as JSON, or a complete astro.config.mjs.
package starlight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/echolabx/docsite/internal/emit"
	"github.com/echolabx/docsite/internal/site"
)

const (
	JSONName = "starlight-json"
	MJSName  = "starlight"
)

func init() {
	emit.Register(JSONTarget{})
	emit.Register(MJSTarget{})
}

// JSONTarget writes the Starlight options object, plus the astro block when set.
type JSONTarget struct{}

func (JSONTarget) Name() string      { return JSONName }
func (JSONTarget) Extension() string { return ".json" }

func (JSONTarget) Emit(w io.Writer, cfg *site.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// DecodeJSON parses the output of JSONTarget.
func DecodeJSON(r io.Reader) (*site.Config, error) {
	var cfg site.Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode starlight options: %w", err)
	}
	return &cfg, nil
}

// MJSTarget writes astro.config.mjs.
type MJSTarget struct{}

func (MJSTarget) Name() string      { return MJSName }
func (MJSTarget) Extension() string { return ".mjs" }

var mjsTemplate = template.Must(template.New("astro.config.mjs").Parse(`import { defineConfig } from "astro/config";
import starlight from "@astrojs/starlight";
{{- if .Tailwind}}
import tailwind from "@astrojs/tailwind";
{{- end}}
{{- if .Icons}}
import Icons from "unplugin-icons/vite";
{{- end}}

// https://astro.build/config
export default defineConfig({
{{- if .Site}}
  site: {{.Site}},
{{- end}}
  integrations: [
    starlight({{.Options}}),
{{- if .Tailwind}}
    tailwind({{.Tailwind}}),
{{- end}}
  ],
{{- if .Icons}}
  vite: {
    plugins: [Icons({{.Icons}})],
  },
{{- end}}
});
`))

type mjsData struct {
	Site     string
	Options  string
	Tailwind string
	Icons    string
}

func (MJSTarget) Emit(w io.Writer, cfg *site.Config) error {
	var data mjsData
	var err error
	if data.Options, err = literal(cfg.Options, "    "); err != nil {
		return err
	}
	if a := cfg.Astro; a != nil {
		if a.Site != "" {
			if data.Site, err = literal(a.Site, "  "); err != nil {
				return err
			}
		}
		if a.Tailwind != nil {
			if data.Tailwind, err = literal(a.Tailwind, "    "); err != nil {
				return err
			}
		}
		if a.Icons != nil {
			if data.Icons, err = literal(a.Icons, "    "); err != nil {
				return err
			}
		}
	}
	return mjsTemplate.Execute(w, data)
}

// literal encodes v as a JSON value, which is also a valid JavaScript
// expression, with continuation lines indented by prefix.
func literal(v any, prefix string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
