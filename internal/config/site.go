package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/schema"
	"github.com/echolabx/docsite/internal/site"
)

// Format is the encoding of a site definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from the file extension. Anything that is not
// .json is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadSite reads and validates a site definition file.
func LoadSite(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.NotFoundError("site definition not found").WithContext("path", path).Build()
	}
	if err != nil {
		return nil, derrors.FileSystemError("failed to read site definition").WithCause(err).
			WithContext("path", path).Build()
	}
	cfg, err := DecodeSite(data, FormatFor(path))
	if err != nil {
		if ce, ok := derrors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// DecodeSite validates data against the site schema and decodes it.
func DecodeSite(data []byte, format Format) (*site.Config, error) {
	doc, err := toJSON(data, format)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryValidation, "site definition is not well-formed").Build()
	}
	v, err := schema.Default()
	if err != nil {
		return nil, derrors.InternalError("failed to compile site schema").WithCause(err).Build()
	}
	if err := v.ValidateBytes(doc); err != nil {
		return nil, err
	}
	var cfg site.Config
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryValidation, "failed to decode site definition").Build()
	}
	return &cfg, nil
}

// toJSON re-encodes a YAML document as JSON so both formats go through the
// same schema and decoder.
func toJSON(data []byte, format Format) ([]byte, error) {
	if format == FormatJSON {
		return data, nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}

// EncodeSite serializes cfg in the given format.
func EncodeSite(cfg *site.Config, format Format) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal site definition: %w", err)
		}
		return append(data, '\n'), nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal site definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ResolveSite loads the site file named by cfg, or returns the built-in
// EchoProxy site when none is configured.
func ResolveSite(cfg *Config) (*site.Config, error) {
	if cfg == nil || cfg.SiteFile == "" {
		slog.Debug("No site_file configured, using built-in site")
		return site.EchoProxy(), nil
	}
	path := cfg.ResolvePath(cfg.SiteFile)
	slog.Debug("Loading site definition", logfields.Path(path))
	return LoadSite(path)
}
