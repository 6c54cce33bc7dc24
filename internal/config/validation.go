package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateConfig checks a normalized, defaulted configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config nil")
	}
	if cfg.Version != CurrentVersion {
		return fmt.Errorf("unsupported configuration version: %q (expected %s)", cfg.Version, CurrentVersion)
	}
	if NormalizeTarget(string(cfg.Output.Target)) == "" {
		return fmt.Errorf("invalid output.target %q, valid options: %v", cfg.Output.Target, ValidTargets())
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		return errors.New("output.path cannot be empty")
	}
	if cfg.SiteFile != "" {
		switch strings.ToLower(filepath.Ext(cfg.SiteFile)) {
		case ".yaml", ".yml", ".json":
		default:
			return fmt.Errorf("site_file %q must be a .yaml, .yml or .json file", cfg.SiteFile)
		}
	}
	if cfg.Metrics.Textfile != "" && filepath.Ext(cfg.Metrics.Textfile) != ".prom" {
		return fmt.Errorf("metrics.textfile %q must end in .prom", cfg.Metrics.Textfile)
	}
	return nil
}
