package sidebar

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/echolabx/docsite/internal/nav"
)

// ErrNoSidebar is returned by Parse when the document has no sidebar nav.
var ErrNoSidebar = errors.New("no <nav class=\"sidebar\"> element found")

// Parse recovers the navigation tree from HTML produced by Render. Labels are
// taken verbatim from the text of <a> and <summary>, surrounding whitespace
// included.
func Parse(r io.Reader) (nav.Entries, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	root := find(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Nav && hasClass(n, navClass)
	})
	if root == nil {
		return nil, ErrNoSidebar
	}
	ul := firstChild(root, atom.Ul)
	if ul == nil {
		return nav.Entries{}, nil
	}
	return parseList(ul), nil
}

func parseList(ul *html.Node) nav.Entries {
	out := nav.Entries{}
	for li := ul.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		if d := firstChild(li, atom.Details); d != nil {
			out = append(out, parseGroup(d))
			continue
		}
		if a := firstChild(li, atom.A); a != nil {
			href, _ := attr(a, "href")
			out = append(out, nav.NewItem(textContent(a), href))
		}
	}
	return out
}

func parseGroup(d *html.Node) *nav.Group {
	g := &nav.Group{}
	if s := firstChild(d, atom.Summary); s != nil {
		g.Label = textContent(s)
	}
	_, open := attr(d, "open")
	g.Collapsed = !open
	if dir, ok := attr(d, autogenerateKey); ok {
		g.Autogenerate = &nav.Autogenerate{Directory: dir}
	}
	if ul := firstChild(d, atom.Ul); ul != nil {
		g.Items = parseList(ul)
	} else if g.Autogenerate == nil {
		g.Items = nav.Entries{}
	}
	return g
}

// Hrefs lists the href of every anchor in document order.
func Hrefs(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var out []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return out, nil
			}
			return out, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					out = append(out, string(val))
				}
			}
		}
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func firstChild(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
