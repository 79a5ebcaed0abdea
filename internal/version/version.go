package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build, overridable via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full renders version, commit, build time, and the Go toolchain that
// produced the binary.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s, go: %s",
		Version, Commit, BuildTime, runtime.Version())
}
