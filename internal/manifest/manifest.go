// Package manifest records what one emission produced.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"github.com/echolabx/docsite/internal/content"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
	"github.com/echolabx/docsite/internal/version"
)

// EmitManifest is a complete record of one emission's inputs and output.
type EmitManifest struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"docsite_version"`
	Target     string    `json:"target"`
	Inputs     Inputs    `json:"inputs"`
	Outputs    Outputs   `json:"outputs"`
	Sidebar    Sidebar   `json:"sidebar"`
	Documents  []DocRef  `json:"documents,omitempty"`
	Unresolved []string  `json:"unresolved,omitempty"`
	// BrokenLinks are links inside documents that resolve to nothing.
	BrokenLinks []content.BrokenLink `json:"broken_links,omitempty"`
	Duration    int64                `json:"duration_ms"`
}

// Inputs captures what the emission was built from.
type Inputs struct {
	SiteFile   string `json:"site_file,omitempty"`
	SiteHash   string `json:"site_hash"`
	ContentDir string `json:"content_dir,omitempty"`
}

// Outputs captures the emitted file.
type Outputs struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}

// Sidebar summarizes the emitted tree.
type Sidebar struct {
	Groups int `json:"groups"`
	Items  int `json:"items"`
}

// DocRef ties a sidebar link to the document it resolved to.
type DocRef struct {
	Link        string `json:"link"`
	Route       string `json:"route"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
}

// New records an emission of cfg to outputPath that produced data.
func New(target, outputPath string, cfg *site.Config, data []byte) (*EmitManifest, error) {
	siteHash, err := SiteHash(cfg)
	if err != nil {
		return nil, err
	}
	groups, items := nav.Count(cfg.Sidebar)
	return &EmitManifest{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Target:    target,
		Inputs:    Inputs{SiteHash: siteHash},
		Outputs:   Outputs{Path: outputPath, SHA256: sum(data), Bytes: len(data)},
		Sidebar:   Sidebar{Groups: groups, Items: items},
	}, nil
}

// AttachContent records, for every sidebar link, the document it resolves to.
// Links that resolve to nothing are listed in Unresolved.
func (m *EmitManifest) AttachContent(idx *content.Index, cfg *site.Config) {
	m.Inputs.ContentDir = idx.Dir()
	m.Documents = nil
	m.Unresolved = nil
	for _, it := range nav.Items(cfg.Sidebar) {
		doc, ok := idx.Resolve(it.Link)
		if !ok {
			m.Unresolved = append(m.Unresolved, it.Link)
			continue
		}
		m.Documents = append(m.Documents, DocRef{
			Link:        it.Link,
			Route:       doc.Route,
			Path:        doc.Path,
			Fingerprint: doc.Fingerprint,
		})
	}
	m.BrokenLinks = idx.BrokenLinks()
}

// SiteHash is the SHA-256 of the canonical JSON encoding of cfg.
func SiteHash(cfg *site.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal site for hash: %w", err)
	}
	return sum(data), nil
}

func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ToJSON serializes the manifest to JSON.
func (m *EmitManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*EmitManifest, error) {
	var m EmitManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// WriteFile atomically writes the manifest to path.
func (m *EmitManifest) WriteFile(path string) error {
	data, err := m.ToJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	return renameio.WriteFile(path, data, 0o644)
}
