// Package site holds the declarative configuration of a documentation site:
// branding, head injections, social links and the sidebar tree.
//
// A Config is built once, handed to an emitter and discarded. Nothing in this
// package validates or performs I/O.
package site

import (
	"maps"

	"github.com/invopop/jsonschema"

	"github.com/echolabx/docsite/internal/nav"
)

// Config is the complete site definition.
type Config struct {
	Options `yaml:",inline"`

	// Astro carries options for the surrounding Astro config that are not part
	// of the Starlight plugin options.
	Astro *Astro `json:"astro,omitempty" yaml:"astro,omitempty"`
}

// Options mirrors the Starlight plugin options object.
type Options struct {
	Title       string            `json:"title" yaml:"title" jsonschema:"minLength=1"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Logo        *Logo             `json:"logo,omitempty" yaml:"logo,omitempty"`
	Head        []HeadEntry       `json:"head,omitempty" yaml:"head,omitempty"`
	Social      map[string]string `json:"social,omitempty" yaml:"social,omitempty"`
	Sidebar     nav.Entries       `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	CustomCSS   []string          `json:"customCss,omitempty" yaml:"customCss,omitempty"`
	Components  map[string]string `json:"components,omitempty" yaml:"components,omitempty"`
	EditLink    *EditLink         `json:"editLink,omitempty" yaml:"editLink,omitempty"`
}

// Logo references the site logo. Either Src or a Light/Dark pair is set.
type Logo struct {
	Src           string `json:"src,omitempty" yaml:"src,omitempty"`
	Light         string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark          string `json:"dark,omitempty" yaml:"dark,omitempty"`
	Alt           string `json:"alt,omitempty" yaml:"alt,omitempty"`
	ReplacesTitle bool   `json:"replacesTitle,omitempty" yaml:"replacesTitle,omitempty"`
}

// HeadEntry injects one tag into the document head.
type HeadEntry struct {
	Tag     string `json:"tag" yaml:"tag" jsonschema:"minLength=1"`
	Attrs   Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Attrs maps attribute names to string or boolean values.
type Attrs map[string]any

// JSONSchema restricts attribute values to strings and booleans.
func (Attrs) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		AdditionalProperties: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "boolean"}},
		},
	}
}

// EditLink configures "Edit page" links.
type EditLink struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// Astro holds integration options for astro.config.mjs.
type Astro struct {
	Site     string    `json:"site,omitempty" yaml:"site,omitempty"`
	Tailwind *Tailwind `json:"tailwind,omitempty" yaml:"tailwind,omitempty"`
	Icons    *Icons    `json:"icons,omitempty" yaml:"icons,omitempty"`
}

// Tailwind enables the tailwind integration.
type Tailwind struct {
	ApplyBaseStyles bool `json:"applyBaseStyles" yaml:"applyBaseStyles"`
}

// Icons enables the unplugin-icons vite plugin.
type Icons struct {
	Compiler string `json:"compiler" yaml:"compiler"`
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{Options: c.Options}
	if c.Logo != nil {
		logo := *c.Logo
		out.Logo = &logo
	}
	if c.Head != nil {
		out.Head = make([]HeadEntry, len(c.Head))
		for i, h := range c.Head {
			out.Head[i] = HeadEntry{Tag: h.Tag, Content: h.Content, Attrs: maps.Clone(h.Attrs)}
		}
	}
	out.Social = maps.Clone(c.Social)
	out.Sidebar = nav.Clone(c.Sidebar)
	if c.CustomCSS != nil {
		out.CustomCSS = append([]string(nil), c.CustomCSS...)
	}
	out.Components = maps.Clone(c.Components)
	if c.EditLink != nil {
		el := *c.EditLink
		out.EditLink = &el
	}
	if c.Astro != nil {
		astro := *c.Astro
		if astro.Tailwind != nil {
			tw := *astro.Tailwind
			astro.Tailwind = &tw
		}
		if astro.Icons != nil {
			ic := *astro.Icons
			astro.Icons = &ic
		}
		out.Astro = &astro
	}
	return out
}
