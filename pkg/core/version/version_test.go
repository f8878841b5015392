package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(App) {
		t.Errorf("App version %q does not match semver format (x.y.z)", App)
	}
	if ConfigSchema == "" {
		t.Error("ConfigSchema is empty")
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	if !strings.HasPrefix(info, "sportspa "+App) {
		t.Errorf("Info() = %q, want prefix %q", info, "sportspa "+App)
	}
	if !strings.Contains(info, "commit "+Commit) {
		t.Errorf("Info() = %q, want commit %q", info, Commit)
	}
}
