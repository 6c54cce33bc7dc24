package content

import (
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/nav"
)

// Expand returns a copy of entries in which every autogenerated group is
// replaced by a plain group listing the documents under its directory.
// Explicit items of such a group stay ahead of the generated ones.
// Subdirectories become nested groups. Drafts and hidden documents are left
// out. Entries is not modified.
func (i *Index) Expand(entries nav.Entries) nav.Entries {
	out := nav.Clone(entries)
	_ = nav.Walk(out, func(loc nav.Location, e nav.Entry) error {
		g, ok := e.(*nav.Group)
		if !ok || g.Autogenerate == nil {
			return nil
		}
		auto := g.Autogenerate
		g.Autogenerate = nil
		g.Collapsed = g.Collapsed || auto.Collapsed
		g.Items = append(g.Items, i.generate(auto.Directory, auto.Collapsed)...)
		slog.Debug("Expanded autogenerated group", logfields.Group(g.Label),
			logfields.Path(auto.Directory), logfields.Count(len(g.Items)))
		return nav.SkipGroup
	})
	return out
}

type node struct {
	doc      *Document
	name     string
	children map[string]*node
}

func (i *Index) generate(dir string, collapsed bool) nav.Entries {
	// Directories are matched by the route their index page would have.
	prefix := RouteFor(path.Join(strings.Trim(dir, "/"), "index"))
	root := &node{children: map[string]*node{}}
	for _, d := range i.docs {
		if d.Draft || d.Hidden {
			continue
		}
		rel, ok := under(d.Route, prefix)
		if !ok {
			continue
		}
		n := root
		segments := strings.Split(rel, "/")
		for _, seg := range segments[:len(segments)-1] {
			child, ok := n.children[seg]
			if !ok {
				child = &node{name: seg, children: map[string]*node{}}
				n.children[seg] = child
			}
			n = child
		}
		leaf := segments[len(segments)-1]
		if existing, ok := n.children[leaf]; ok {
			// A directory index page; it becomes the first entry of its group.
			existing.doc = d
			continue
		}
		n.children[leaf] = &node{doc: d, name: leaf, children: map[string]*node{}}
	}
	return root.entries(collapsed)
}

// under reports the route relative to prefix. The directory's own index page
// is not part of its generated group.
func under(route, prefix string) (string, bool) {
	if prefix == "/" {
		if route == "/" {
			return "", false
		}
		return strings.TrimPrefix(route, "/"), true
	}
	if !strings.HasPrefix(route, prefix+"/") {
		return "", false
	}
	return strings.TrimPrefix(route, prefix+"/"), true
}

func (n *node) entries(collapsed bool) nav.Entries {
	kids := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, c)
	}
	sort.Slice(kids, func(a, b int) bool { return kids[a].less(kids[b]) })

	out := make(nav.Entries, 0, len(kids))
	for _, c := range kids {
		if len(c.children) == 0 {
			out = append(out, nav.NewItem(c.doc.SidebarLabel(), c.doc.Route))
			continue
		}
		g := &nav.Group{Label: TitleFromName(c.name), Collapsed: collapsed}
		if c.doc != nil {
			g.Label = c.doc.SidebarLabel()
			g.Items = append(g.Items, nav.NewItem(c.doc.SidebarLabel(), c.doc.Route))
		}
		g.Items = append(g.Items, c.entries(collapsed)...)
		out = append(out, g)
	}
	return out
}

// less orders by sidebar order, then items before groups, then by name.
func (n *node) less(o *node) bool {
	no, oo := n.order(), o.order()
	if no != oo {
		return no < oo
	}
	ng, og := len(n.children) > 0, len(o.children) > 0
	if ng != og {
		return !ng
	}
	return n.name < o.name
}

func (n *node) order() int {
	if n.doc != nil && n.doc.Order != nil {
		return *n.doc.Order
	}
	return int(^uint(0) >> 1)
}
