package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/echolabx/docsite/internal/site"
	"github.com/echolabx/docsite/internal/util/sets"
)

// Tags Starlight accepts in head entries.
var knownHeadTags = sets.New("title", "base", "link", "style", "meta", "script", "noscript", "template")

// HeadEntryRule checks head injections.
type HeadEntryRule struct{}

func (r *HeadEntryRule) Name() string { return "head-entry" }

func (r *HeadEntryRule) Check(cfg *site.Config) []Issue {
	var issues []Issue
	for i, h := range cfg.Head {
		loc := fmt.Sprintf("head[%d]", i)
		add := func(sev Severity, msg string) *Issue {
			issues = append(issues, Issue{Location: loc, Severity: sev, Rule: r.Name(), Message: msg})
			return &issues[len(issues)-1]
		}
		tag := strings.TrimSpace(h.Tag)
		if tag == "" {
			add(SeverityError, "Head entry has an empty tag")
		} else if !knownHeadTags.Has(strings.ToLower(tag)) {
			issue := add(SeverityWarning, fmt.Sprintf("Head entry uses unsupported tag <%s>", tag))
			issue.Fix = "Use one of: " + strings.Join(sets.Sorted(knownHeadTags), ", ")
		}

		keys := make([]string, 0, len(h.Attrs))
		for k := range h.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				add(SeverityError, "Head entry has an attribute with an empty name")
				continue
			}
			switch h.Attrs[k].(type) {
			case string, bool:
			default:
				add(SeverityError, fmt.Sprintf("Attribute %q must be a string or boolean, got %T", k, h.Attrs[k]))
			}
		}

		if strings.EqualFold(tag, "script") && strings.TrimSpace(h.Content) == "" {
			if src, _ := h.Attrs["src"].(string); src == "" {
				add(SeverityWarning, "Script entry has neither src nor content")
			}
		}
	}
	return issues
}
