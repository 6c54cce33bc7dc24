package config

import (
	"log/slog"

	"github.com/echolabx/docsite/internal/foundation/normalization"
)

// Target names an emit target.
type Target string

const (
	TargetStarlight     Target = "starlight"
	TargetStarlightJSON Target = "starlight-json"
	TargetHextra        Target = "hextra"
)

var targetNormalizer = normalization.NewNormalizer(map[string]Target{
	"starlight":      TargetStarlight,
	"astro":          TargetStarlight,
	"starlight-json": TargetStarlightJSON,
	"json":           TargetStarlightJSON,
	"hextra":         TargetHextra,
	"hugo":           TargetHextra,
}, TargetStarlight)

// NormalizeTarget returns the canonical target for raw, or "" when unknown.
func NormalizeTarget(raw string) Target {
	t, ok := targetNormalizer.Lookup(raw)
	if !ok {
		return ""
	}
	return t
}

// ValidTargets lists accepted spellings.
func ValidTargets() []string { return targetNormalizer.ValidKeys() }

// DefaultPath is the conventional output file of the target.
func (t Target) DefaultPath() string {
	switch t {
	case TargetStarlightJSON:
		return "starlight.json"
	case TargetHextra:
		return "hugo.yaml"
	default:
		return "astro.config.mjs"
	}
}

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// NormalizeLogLevel returns the canonical level for raw, or "" when unknown.
func NormalizeLogLevel(raw string) LogLevel {
	l, ok := logLevelNormalizer.Lookup(raw)
	if !ok {
		return ""
	}
	return l
}

// SlogLevel maps the level onto slog, defaulting to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

// NormalizeLogFormat returns the canonical format for raw, or "" when unknown.
func NormalizeLogFormat(raw string) LogFormat {
	f, ok := logFormatNormalizer.Lookup(raw)
	if !ok {
		return ""
	}
	return f
}
