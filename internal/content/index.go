// Package content indexes a Starlight content collection so sidebar links can
// be resolved and autogenerated groups expanded.
package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/frontmatter"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/markdown"
	"github.com/echolabx/docsite/internal/util/sets"
)

// Document is one page of the content collection.
type Document struct {
	// Path is the slash-separated path relative to the content directory.
	Path  string
	Route string
	Title string
	// Label overrides Title in generated sidebars.
	Label string
	// Order sorts generated sidebars; nil sorts after every explicit order.
	Order       *int
	Hidden      bool
	Draft       bool
	Fingerprint string
	// Links are the link destinations found in the body.
	Links []string
}

// SidebarLabel is the label used when the document appears in a generated group.
func (d *Document) SidebarLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Title
}

type pageMeta struct {
	Title   string `yaml:"title"`
	Draft   bool   `yaml:"draft"`
	Sidebar struct {
		Label  string `yaml:"label"`
		Order  *int   `yaml:"order"`
		Hidden bool   `yaml:"hidden"`
	} `yaml:"sidebar"`
}

// Index is an immutable view of a content directory.
type Index struct {
	dir     string
	docs    []*Document
	byRoute map[string]*Document
}

var extensions = sets.New(".md", ".mdx")

// Build walks dir for .md and .mdx files. Directories whose name starts with
// "." or "_" are skipped.
func Build(dir string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryNotFound, "content directory not found").
			WithContext("path", dir).Build()
	}
	if !info.IsDir() {
		return nil, derrors.ValidationError("content path is not a directory").WithContext("path", dir).Build()
	}
	return BuildFS(os.DirFS(dir), dir)
}

// BuildFS indexes fsys; name is only used in errors and logs.
func BuildFS(fsys fs.FS, name string) (*Index, error) {
	idx := &Index{dir: name, byRoute: map[string]*Document{}}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		base := d.Name()
		if d.IsDir() {
			if p != "." && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")) {
				return fs.SkipDir
			}
			return nil
		}
		if !extensions.Has(strings.ToLower(path.Ext(base))) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		doc, err := parseDocument(p, data)
		if err != nil {
			return derrors.WrapError(err, derrors.CategoryValidation, "invalid content document").
				WithContext("path", filepath.Join(name, filepath.FromSlash(p))).Build()
		}
		if prev, dup := idx.byRoute[doc.Route]; dup {
			slog.Warn("Two documents map to the same route, keeping the first",
				logfields.Path(prev.Path), slog.String("duplicate", doc.Path), logfields.Link(doc.Route))
			return nil
		}
		idx.byRoute[doc.Route] = doc
		idx.docs = append(idx.docs, doc)
		return nil
	})
	if err != nil {
		if derrors.IsClassified(err) {
			return nil, err
		}
		return nil, derrors.FileSystemError("failed to index content").WithCause(err).
			WithContext("path", name).Build()
	}
	sort.Slice(idx.docs, func(i, j int) bool { return idx.docs[i].Route < idx.docs[j].Route })
	slog.Debug("Indexed content", logfields.Path(name), logfields.Count(len(idx.docs)))
	return idx, nil
}

func parseDocument(p string, data []byte) (*Document, error) {
	fm, body, _, err := frontmatter.Split(data)
	if err != nil {
		return nil, err
	}
	var meta pageMeta
	if err := frontmatter.Decode(fm, &meta); err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	fields, err := frontmatter.Parse(fm)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	fp, err := Fingerprint(fields, body)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Path:        p,
		Route:       RouteFor(p),
		Title:       meta.Title,
		Label:       meta.Sidebar.Label,
		Order:       meta.Sidebar.Order,
		Hidden:      meta.Sidebar.Hidden,
		Draft:       meta.Draft,
		Fingerprint: fp,
		Links:       markdown.Links(body),
	}
	if doc.Title == "" {
		doc.Title = markdown.FirstHeading(body)
	}
	if doc.Title == "" {
		doc.Title = TitleFromName(p)
	}
	return doc, nil
}

// RouteFor maps a content path to its route: guide/intro.md becomes
// /guide/intro, guide/index.mdx becomes /guide and index.md becomes /.
// Segments are lowercased and spaces replaced with dashes.
func RouteFor(p string) string {
	p = strings.TrimSuffix(filepath.ToSlash(p), path.Ext(p))
	if p == "index" {
		p = ""
	}
	p = strings.TrimSuffix(p, "/index")
	p = strings.ToLower(strings.ReplaceAll(p, " ", "-"))
	return "/" + p
}

var titleCaser = cases.Title(language.English)

// TitleFromName derives a title from a file name: getting-started.md becomes
// "Getting Started". Index files take the name of their directory.
func TitleFromName(p string) string {
	p = filepath.ToSlash(p)
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if base == "index" {
		if dir := path.Dir(p); dir != "." {
			base = path.Base(dir)
		}
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(strings.TrimSpace(base))
}

// Dir is the indexed directory.
func (i *Index) Dir() string { return i.dir }

// Documents returns all documents sorted by route.
func (i *Index) Documents() []*Document {
	out := make([]*Document, len(i.docs))
	copy(out, i.docs)
	return out
}

// Len is the number of indexed documents.
func (i *Index) Len() int { return len(i.docs) }

// Resolve finds the document a sidebar link points at. Fragments, query
// strings and trailing slashes are ignored. Only site-absolute links resolve.
func (i *Index) Resolve(link string) (*Document, bool) {
	route, ok := NormalizeLink(link)
	if !ok {
		return nil, false
	}
	d, ok := i.byRoute[route]
	return d, ok
}

// NormalizeLink strips the fragment, the query and any trailing slash from a
// site-absolute link. It reports false for external or relative links.
func NormalizeLink(link string) (string, bool) {
	if !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//") {
		return "", false
	}
	if j := strings.IndexAny(link, "#?"); j >= 0 {
		link = link[:j]
	}
	if len(link) > 1 {
		link = strings.TrimRight(link, "/")
		if link == "" {
			link = "/"
		}
	}
	return link, true
}

// BrokenLink is a site-absolute link inside a document that resolves to no document.
type BrokenLink struct {
	Document string `json:"document"`
	Link     string `json:"link"`
}

// BrokenLinks lists unresolved site-absolute links found in document bodies.
// Links to files with an extension are assumed to be static assets.
func (i *Index) BrokenLinks() []BrokenLink {
	var out []BrokenLink
	for _, d := range i.docs {
		for _, l := range d.Links {
			route, ok := NormalizeLink(l)
			if !ok || path.Ext(route) != "" {
				continue
			}
			if _, ok := i.Resolve(l); !ok {
				out = append(out, BrokenLink{Document: d.Path, Link: l})
			}
		}
	}
	return out
}
