package lint

import (
	"fmt"
	"strings"

	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

// NavLinkRule checks item labels and links.
type NavLinkRule struct{}

func (r *NavLinkRule) Name() string { return "nav-link" }

func (r *NavLinkRule) Check(cfg *site.Config) []Issue {
	var issues []Issue
	_ = nav.Walk(cfg.Sidebar, func(loc nav.Location, e nav.Entry) error {
		item, ok := e.(*nav.Item)
		if !ok {
			return nil
		}
		if strings.TrimSpace(item.Label) == "" {
			issues = append(issues, Issue{
				Location: loc.Path(),
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  "Sidebar item has an empty label",
			})
		}
		switch {
		case item.Link == "":
			issues = append(issues, Issue{
				Location: loc.Path(),
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("Sidebar item %q has an empty link", item.Label),
			})
		case !strings.HasPrefix(item.Link, "/"):
			issues = append(issues, Issue{
				Location:    loc.Path(),
				Severity:    SeverityError,
				Rule:        r.Name(),
				Message:     fmt.Sprintf("Sidebar link %q must start with /", item.Link),
				Explanation: "Sidebar links are site-absolute paths to content documents.",
				Fix:         "Write the link as /" + strings.TrimLeft(item.Link, "./"),
			})
		}
		return nil
	})
	return issues
}

// NavGroupRule checks group labels and contents.
type NavGroupRule struct{}

func (r *NavGroupRule) Name() string { return "nav-group" }

func (r *NavGroupRule) Check(cfg *site.Config) []Issue {
	var issues []Issue
	_ = nav.Walk(cfg.Sidebar, func(loc nav.Location, e nav.Entry) error {
		g, ok := e.(*nav.Group)
		if !ok {
			return nil
		}
		add := func(sev Severity, msg string) {
			issues = append(issues, Issue{Location: loc.Path(), Severity: sev, Rule: r.Name(), Message: msg})
		}
		if strings.TrimSpace(g.Label) == "" {
			add(SeverityError, "Sidebar group has an empty label")
		}
		switch {
		case g.Autogenerate != nil && len(g.Items) > 0:
			add(SeverityWarning, fmt.Sprintf("Group %q has both items and autogenerate; the renderer uses only one", g.Label))
		case g.Autogenerate == nil && len(g.Items) == 0:
			add(SeverityWarning, fmt.Sprintf("Group %q has no entries", g.Label))
		}
		if g.Autogenerate != nil && strings.Trim(g.Autogenerate.Directory, "/ ") == "" {
			add(SeverityError, fmt.Sprintf("Group %q autogenerates from an empty directory", g.Label))
		}
		return nil
	})
	return issues
}

// DuplicateLinkRule reports links used by more than one item. Duplicates are
// allowed, so this only warns.
type DuplicateLinkRule struct{}

func (r *DuplicateLinkRule) Name() string { return "nav-duplicate-link" }

func (r *DuplicateLinkRule) Check(cfg *site.Config) []Issue {
	first := map[string]nav.Location{}
	var issues []Issue
	_ = nav.Walk(cfg.Sidebar, func(loc nav.Location, e nav.Entry) error {
		item, ok := e.(*nav.Item)
		if !ok || item.Link == "" {
			return nil
		}
		prev, seen := first[item.Link]
		if !seen {
			first[item.Link] = loc
			return nil
		}
		issues = append(issues, Issue{
			Location: loc.Path(),
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Link %s also appears at %s", item.Link, prev.Path()),
			Explanation: fmt.Sprintf("First used under %q, again under %q.",
				breadcrumbOrTop(prev), breadcrumbOrTop(loc)),
		})
		return nil
	})
	return issues
}

func breadcrumbOrTop(loc nav.Location) string {
	if b := loc.Breadcrumb(); b != "" {
		return b
	}
	return "(top level)"
}
