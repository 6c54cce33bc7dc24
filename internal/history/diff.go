package history

import (
	"fmt"

	"github.com/echolabx/docsite/internal/nav"
)

// ChangeKind classifies a sidebar difference.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeRemoved   ChangeKind = "removed"
	ChangeRelabeled ChangeKind = "relabeled"
	ChangeMoved     ChangeKind = "moved"
)

// Change is one difference between two sidebars, keyed by link.
type Change struct {
	Kind     ChangeKind
	Link     string
	Label    string
	OldLabel string
	Group    string
	OldGroup string
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeAdded:
		return fmt.Sprintf("+ %s %q in %s", c.Link, c.Label, groupName(c.Group))
	case ChangeRemoved:
		return fmt.Sprintf("- %s %q from %s", c.Link, c.OldLabel, groupName(c.OldGroup))
	case ChangeRelabeled:
		return fmt.Sprintf("~ %s %q -> %q", c.Link, c.OldLabel, c.Label)
	case ChangeMoved:
		return fmt.Sprintf("> %s %s -> %s", c.Link, groupName(c.OldGroup), groupName(c.Group))
	default:
		return string(c.Kind)
	}
}

func groupName(breadcrumb string) string {
	if breadcrumb == "" {
		return "(top level)"
	}
	return breadcrumb
}

type placed struct {
	label string
	group string
}

func index(entries nav.Entries) ([]string, map[string]placed) {
	var order []string
	byLink := map[string]placed{}
	_ = nav.Walk(entries, func(loc nav.Location, e nav.Entry) error {
		item, ok := e.(*nav.Item)
		if !ok {
			return nil
		}
		if _, dup := byLink[item.Link]; dup {
			return nil
		}
		order = append(order, item.Link)
		byLink[item.Link] = placed{label: item.Label, group: loc.Breadcrumb()}
		return nil
	})
	return order, byLink
}

// DiffSidebars reports how newer differs from older. Items are matched by
// link; for duplicated links only the first occurrence counts. Changes for
// links present in newer come first, in display order, then removals.
func DiffSidebars(older, newer nav.Entries) []Change {
	oldOrder, oldBy := index(older)
	newOrder, newBy := index(newer)

	var changes []Change
	for _, link := range newOrder {
		n := newBy[link]
		o, existed := oldBy[link]
		if !existed {
			changes = append(changes, Change{Kind: ChangeAdded, Link: link, Label: n.label, Group: n.group})
			continue
		}
		if o.label != n.label {
			changes = append(changes, Change{Kind: ChangeRelabeled, Link: link, Label: n.label, OldLabel: o.label, Group: n.group, OldGroup: o.group})
		}
		if o.group != n.group {
			changes = append(changes, Change{Kind: ChangeMoved, Link: link, Label: n.label, OldLabel: o.label, Group: n.group, OldGroup: o.group})
		}
	}
	for _, link := range oldOrder {
		if _, still := newBy[link]; !still {
			o := oldBy[link]
			changes = append(changes, Change{Kind: ChangeRemoved, Link: link, OldLabel: o.label, OldGroup: o.group})
		}
	}
	return changes
}
