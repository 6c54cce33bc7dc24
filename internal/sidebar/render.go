// Package sidebar renders a navigation tree as an HTML preview fragment and
// reads such fragments back.
package sidebar

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/echolabx/docsite/internal/nav"
)

const (
	navClass        = "sidebar"
	autogenerateKey = "data-autogenerate"
)

// Render writes <nav class="sidebar"> with one nested list per group.
// Groups become <details>/<summary>; collapsed groups are rendered closed.
func Render(w io.Writer, entries nav.Entries) error {
	root := element(atom.Nav, html.Attribute{Key: "class", Val: navClass})
	root.AppendChild(list(entries))
	if err := html.Render(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func list(entries nav.Entries) *html.Node {
	ul := element(atom.Ul)
	for _, e := range entries {
		li := element(atom.Li)
		switch v := e.(type) {
		case *nav.Item:
			a := element(atom.A, html.Attribute{Key: "href", Val: v.Link})
			a.AppendChild(text(v.Label))
			li.AppendChild(a)
		case *nav.Group:
			li.AppendChild(group(v))
		default:
			continue
		}
		ul.AppendChild(li)
	}
	return ul
}

func group(g *nav.Group) *html.Node {
	var attrs []html.Attribute
	if !g.Collapsed {
		attrs = append(attrs, html.Attribute{Key: "open"})
	}
	if g.Autogenerate != nil {
		attrs = append(attrs, html.Attribute{Key: autogenerateKey, Val: g.Autogenerate.Directory})
	}
	details := element(atom.Details, attrs...)
	summary := element(atom.Summary)
	summary.AppendChild(text(g.Label))
	details.AppendChild(summary)
	if g.Autogenerate == nil || len(g.Items) > 0 {
		details.AppendChild(list(g.Items))
	}
	return details
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
