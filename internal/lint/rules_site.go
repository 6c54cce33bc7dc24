package lint

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/echolabx/docsite/internal/site"
)

// SiteTitleRule requires a non-empty title.
type SiteTitleRule struct{}

func (r *SiteTitleRule) Name() string { return "site-title" }

func (r *SiteTitleRule) Check(cfg *site.Config) []Issue {
	if strings.TrimSpace(cfg.Title) != "" {
		return nil
	}
	return []Issue{{
		Location: "title",
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  "Site title is empty",
		Fix:      "Set title to the name shown in the header and browser tab",
	}}
}

// SocialURLRule requires absolute http(s) URLs for every social link.
type SocialURLRule struct{}

func (r *SocialURLRule) Name() string { return "social-url" }

func (r *SocialURLRule) Check(cfg *site.Config) []Issue {
	platforms := make([]string, 0, len(cfg.Social))
	for p := range cfg.Social {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	var issues []Issue
	for _, p := range platforms {
		loc := "social." + p
		if strings.TrimSpace(p) == "" {
			issues = append(issues, Issue{
				Location: "social",
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  "Social link has an empty platform name",
			})
			continue
		}
		if msg := checkAbsoluteURL(cfg.Social[p]); msg != "" {
			issues = append(issues, Issue{
				Location:    loc,
				Severity:    SeverityError,
				Rule:        r.Name(),
				Message:     fmt.Sprintf("Social link %q is not a valid URL", p),
				Explanation: msg,
				Fix:         "Use an absolute URL such as https://github.com/org/repo",
			})
		}
	}
	return issues
}

func checkAbsoluteURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "URL is empty"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err.Error()
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return "URL has no host"
	}
	return ""
}
