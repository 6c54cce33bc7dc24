package config

import "path/filepath"

// CurrentVersion is the only accepted value of the version field.
const CurrentVersion = "1.0"

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "docsite.yaml"

// Config represents docsite.yaml.
type Config struct {
	Version  string        `yaml:"version"`
	SiteFile string        `yaml:"site_file,omitempty"`
	Content  ContentConfig `yaml:"content,omitempty"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Metrics  MetricsConfig `yaml:"metrics,omitempty"`

	// dir is the directory holding the configuration file; relative paths
	// resolve against it.
	dir string
}

// ContentConfig points at the Starlight content collection.
type ContentConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// OutputConfig selects the emit target and where it writes.
type OutputConfig struct {
	Target Target `yaml:"target"`
	Path   string `yaml:"path,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// MetricsConfig enables the node-exporter textfile.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Dir returns the directory the configuration was loaded from, or "" for an
// in-memory configuration.
func (c *Config) Dir() string { return c.dir }

// ResolvePath makes p absolute relative to the configuration directory.
// Empty and absolute paths are returned unchanged.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
