// Package markdown extracts structural facts from Markdown bodies.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the text of the first level-1 ATX or setext heading,
// or "" when the body has none. Inline markup is reduced to its text.
func FirstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

// Links returns the destinations of inline links in document order.
func Links(body []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var out []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if l, ok := n.(*gmast.Link); ok {
			out = append(out, string(l.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return out
}

func nodeText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *gmast.Text:
			buf.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(v.Value)
		default:
			buf.WriteString(nodeText(c, source))
		}
	}
	return buf.String()
}
