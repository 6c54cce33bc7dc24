// Package config loads docsite.yaml and the site definition it points at.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/site"
)

// DefaultSiteFileName is the site definition written by Init.
const DefaultSiteFileName = "site.yaml"

// Load reads, expands, normalizes, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if err := loadEnvFiles(dir); err != nil {
		return nil, derrors.ConfigError("failed to load environment file").WithCause(err).
			WithContext("dir", dir).Build()
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.NotFoundError("configuration file not found").
			WithContext("path", configPath).Build()
	}
	if err != nil {
		return nil, derrors.FileSystemError("failed to read config file").WithCause(err).
			WithContext("path", configPath).Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, derrors.ConfigError("invalid configuration").WithCause(err).
			WithContext("path", configPath).Fatal().Build()
	}
	cfg.dir = dir
	return cfg, nil
}

// Parse decodes already expanded YAML and runs normalization, defaults and
// validation.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	nres, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, w := range nres.Warnings {
		slog.Warn("Config normalization", slog.String("detail", w))
	}

	if err := NewDefaultApplier().ApplyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Version:  CurrentVersion,
		SiteFile: "./" + DefaultSiteFileName,
		Output:   OutputConfig{Target: TargetStarlight, Path: TargetStarlight.DefaultPath()},
		Logging:  LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Init writes an example configuration and, next to it, a site definition
// seeded with the EchoProxy site. Existing files are kept unless force is set.
func Init(configPath string, force bool) error {
	sitePath := filepath.Join(filepath.Dir(configPath), DefaultSiteFileName)
	for _, p := range []string{configPath, sitePath} {
		if _, err := os.Stat(p); err == nil && !force {
			return derrors.ValidationError("file already exists (use --force to overwrite)").
				WithContext("path", p).Build()
		}
	}

	cfgData, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	siteData, err := EncodeSite(site.EchoProxy(), FormatYAML)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return derrors.FileSystemError("failed to create config directory").WithCause(err).Build()
	}
	for p, data := range map[string][]byte{configPath: cfgData, sitePath: siteData} {
		if err := renameio.WriteFile(p, data, 0o644); err != nil {
			return derrors.FileSystemError("failed to write file").WithCause(err).
				WithContext("path", p).Build()
		}
		slog.Info("Wrote file", logfields.Path(p))
	}
	return nil
}
