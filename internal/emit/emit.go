// Package emit turns a site definition into the configuration file of an
// external static-site generator.
//
// Targets live in subpackages and register themselves from init; import them
// for side effects to make them available:
//
//	import _ "github.com/echolabx/docsite/internal/emit/starlight"
package emit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/renameio/v2"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/site"
)

// Target writes one configuration format.
//
// Emit must not modify cfg and must not fail on malformed links or labels;
// only encoding and I/O errors are reported.
type Target interface {
	Name() string
	Extension() string
	Emit(w io.Writer, cfg *site.Config) error
}

var (
	regMu sync.RWMutex
	reg   = map[string]Target{}
)

// Register makes a target available by name. Duplicate names are ignored.
func Register(t Target) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a registered target.
func Get(name string) (Target, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	t, ok := reg[name]
	if !ok {
		return nil, derrors.NotFoundError("unknown emit target").
			WithContext("target", name).
			WithContext("available", fmt.Sprint(namesLocked())).
			Build()
	}
	return t, nil
}

// Names lists registered targets in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Render emits cfg into memory.
func Render(t Target, cfg *site.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Emit(&buf, cfg); err != nil {
		return nil, derrors.RenderError("failed to emit site configuration").WithCause(err).
			WithContext("target", t.Name()).Build()
	}
	return buf.Bytes(), nil
}

// WriteFile renders cfg and atomically replaces path with the result. The
// emitted bytes are returned for hashing.
func WriteFile(path string, t Target, cfg *site.Config) ([]byte, error) {
	data, err := Render(t, cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, derrors.FileSystemError("failed to create output directory").WithCause(err).
			WithContext("path", path).Build()
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return nil, derrors.FileSystemError("failed to write output").WithCause(err).
			WithContext("path", path).Build()
	}
	return data, nil
}
