package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyTarget   = "target"
	KeyGroup    = "group"
	KeyLink     = "link"
	KeyLabel    = "label"
	KeyRule     = "rule"
	KeyRunID    = "run_id"
	KeyCommit   = "commit"
	KeyCount    = "count"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Target(t string) slog.Attr        { return slog.String(KeyTarget, t) }
func Group(label string) slog.Attr     { return slog.String(KeyGroup, label) }
func Link(l string) slog.Attr          { return slog.String(KeyLink, l) }
func Label(l string) slog.Attr         { return slog.String(KeyLabel, l) }
func Rule(name string) slog.Attr       { return slog.String(KeyRule, name) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Commit(hash string) slog.Attr     { return slog.String(KeyCommit, hash) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
