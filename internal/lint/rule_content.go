package lint

import (
	"fmt"
	"strings"

	"github.com/echolabx/docsite/internal/content"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

// ContentRule checks sidebar links against the content collection.
type ContentRule struct {
	Index *content.Index
}

func (r *ContentRule) Name() string { return "nav-content" }

func (r *ContentRule) Check(cfg *site.Config) []Issue {
	var issues []Issue
	_ = nav.Walk(cfg.Sidebar, func(loc nav.Location, e nav.Entry) error {
		switch v := e.(type) {
		case *nav.Item:
			issues = append(issues, r.checkItem(loc, v)...)
		case *nav.Group:
			if v.Autogenerate != nil && len(r.Index.Expand(nav.Entries{v})[0].(*nav.Group).Items) == len(v.Items) {
				issues = append(issues, Issue{
					Location: loc.Path(),
					Severity: SeverityWarning,
					Rule:     r.Name(),
					Message:  fmt.Sprintf("Autogenerated group %q matches no documents in %s", v.Label, v.Autogenerate.Directory),
				})
			}
		}
		return nil
	})
	return issues
}

func (r *ContentRule) checkItem(loc nav.Location, item *nav.Item) []Issue {
	if !strings.HasPrefix(item.Link, "/") {
		return nil
	}
	doc, ok := r.Index.Resolve(item.Link)
	if !ok {
		return []Issue{{
			Location:    loc.Path(),
			Severity:    SeverityError,
			Rule:        r.Name(),
			Message:     fmt.Sprintf("Link %s does not resolve to a document", item.Link),
			Explanation: fmt.Sprintf("No .md or .mdx file in %s maps to this route.", r.Index.Dir()),
			Fix:         "Create the document or correct the link",
		}}
	}
	var issues []Issue
	if doc.Draft {
		issues = append(issues, Issue{
			Location: loc.Path(),
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Link %s points at draft %s", item.Link, doc.Path),
			Fix:      "Drafts are excluded from production builds; publish the page or remove the link",
		})
	}
	if item.Label != doc.Title && item.Label != doc.Label {
		issues = append(issues, Issue{
			Location: loc.Path(),
			Severity: SeverityInfo,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Label %q differs from document title %q", item.Label, doc.Title),
		})
	}
	return issues
}
