// ============================================================================
// SportsPA - Member and facility manager
// ============================================================================
//
// Package:     version
// Description: Central version information for the sportspa binary
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	App = "1.3.0"

	// ConfigSchema is the version of the config file layout
	ConfigSchema = "1"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the one-line version banner
func Info() string {
	return fmt.Sprintf("sportspa %s (commit %s, built %s, %s/%s)",
		App, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
