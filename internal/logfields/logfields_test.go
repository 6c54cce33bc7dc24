package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/site.yaml", Path("/tmp/site.yaml")},
		{"Target", KeyTarget, "starlight", Target("starlight")},
		{"Group", KeyGroup, "Start Here", Group("Start Here")},
		{"Link", KeyLink, "/start", Link("/start")},
		{"Label", KeyLabel, "Getting Started", Label("Getting Started")},
		{"Rule", KeyRule, "nav-link", Rule("nav-link")},
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Commit", KeyCommit, "deadbeef", Commit("deadbeef")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := Count(3); v.Key != KeyCount || v.Value.Int64() != 3 {
		t.Fatalf("Count mismatch: %v", v)
	}
	if v := DurationMS(12.5); v.Key != KeyDuration || v.Value.Float64() != 12.5 {
		t.Fatalf("DurationMS mismatch: %v", v)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	if attr := Error(nil); attr.Key != KeyError || attr.Value.String() != "" {
		t.Fatalf("unexpected nil error attr: %v", attr)
	}
	if attr := Error(errors.New("err-test")); attr.Value.String() != "err-test" {
		t.Fatalf("expected 'err-test', got %s", attr.Value.String())
	}
}
