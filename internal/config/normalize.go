package config

import (
	"errors"
	"fmt"
	"strings"
)

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerated fields before defaults are applied.
// It mutates c in place; unknown values fall back to their default with a warning.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.New("config nil")
	}
	res := &NormalizationResult{}
	normalizeOutput(&c.Output, res)
	normalizeLogging(&c.Logging, res)
	c.Version = strings.TrimSpace(c.Version)
	return res, nil
}

func normalizeOutput(o *OutputConfig, res *NormalizationResult) {
	if t := NormalizeTarget(string(o.Target)); t != "" {
		if o.Target != t {
			res.Warnings = append(res.Warnings, warnChanged("output.target", o.Target, t))
			o.Target = t
		}
	} else if strings.TrimSpace(string(o.Target)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("output.target", string(o.Target), string(TargetStarlight)))
		o.Target = TargetStarlight
	}
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if lvl := NormalizeLogLevel(string(l.Level)); lvl != "" {
		if l.Level != lvl {
			res.Warnings = append(res.Warnings, warnChanged("logging.level", l.Level, lvl))
			l.Level = lvl
		}
	} else if strings.TrimSpace(string(l.Level)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.level", string(l.Level), string(LogLevelInfo)))
		l.Level = LogLevelInfo
	}
	if f := NormalizeLogFormat(string(l.Format)); f != "" {
		if l.Format != f {
			res.Warnings = append(res.Warnings, warnChanged("logging.format", l.Format, f))
			l.Format = f
		}
	} else if strings.TrimSpace(string(l.Format)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.format", string(l.Format), string(LogFormatText)))
		l.Format = LogFormatText
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
