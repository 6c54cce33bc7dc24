package nav

import (
	"errors"
	"fmt"
	"strings"
)

// SkipGroup is returned by a WalkFunc to skip the children of the group being visited.
var SkipGroup = errors.New("skip group")

// Location identifies an entry by its index path and the labels of its enclosing groups.
type Location struct {
	Indexes []int
	Trail   []string
}

// Depth is the nesting level of the entry; top-level entries have depth 0.
func (l Location) Depth() int { return len(l.Indexes) - 1 }

// Path renders the index path the way the configuration spells it, e.g. sidebar[1].items[0].
func (l Location) Path() string {
	var b strings.Builder
	for i, idx := range l.Indexes {
		if i == 0 {
			fmt.Fprintf(&b, "sidebar[%d]", idx)
			continue
		}
		fmt.Fprintf(&b, ".items[%d]", idx)
	}
	return b.String()
}

// Breadcrumb joins the enclosing group labels, e.g. "Map Mock > Examples".
func (l Location) Breadcrumb() string { return strings.Join(l.Trail, " > ") }

// WalkFunc is called for every entry in display order.
type WalkFunc func(loc Location, e Entry) error

// Walk visits entries depth-first in display order. Returning SkipGroup from fn
// skips the children of the visited group; any other error stops the walk and is returned.
func Walk(entries Entries, fn WalkFunc) error {
	return walk(entries, nil, nil, fn)
}

func walk(entries Entries, indexes []int, trail []string, fn WalkFunc) error {
	for i, e := range entries {
		if e == nil {
			continue
		}
		loc := Location{
			Indexes: append(append([]int(nil), indexes...), i),
			Trail:   append([]string(nil), trail...),
		}
		err := fn(loc, e)
		if errors.Is(err, SkipGroup) {
			continue
		}
		if err != nil {
			return err
		}
		if g, ok := e.(*Group); ok {
			if err := walk(g.Items, loc.Indexes, append(loc.Trail, g.Label), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Items returns copies of all items in display order.
func Items(entries Entries) []Item {
	var out []Item
	_ = Walk(entries, func(_ Location, e Entry) error {
		if it, ok := e.(*Item); ok {
			out = append(out, *it)
		}
		return nil
	})
	return out
}

// Links returns every item link in display order, duplicates included.
func Links(entries Entries) []string {
	items := Items(entries)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Link)
	}
	return out
}

// Count returns the number of groups and items in the tree.
func Count(entries Entries) (groups, items int) {
	_ = Walk(entries, func(_ Location, e Entry) error {
		if e.Kind() == KindGroup {
			groups++
		} else {
			items++
		}
		return nil
	})
	return groups, items
}

// Clone returns a deep copy of entries.
func Clone(entries Entries) Entries {
	if entries == nil {
		return nil
	}
	out := make(Entries, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case *Item:
			it := *v
			out = append(out, &it)
		case *Group:
			g := &Group{Label: v.Label, Collapsed: v.Collapsed, Items: Clone(v.Items)}
			if v.Autogenerate != nil {
				ag := *v.Autogenerate
				g.Autogenerate = &ag
			}
			out = append(out, g)
		}
	}
	return out
}
