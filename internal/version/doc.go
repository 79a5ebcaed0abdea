// Package version exposes build metadata for the chime binary.
//
// Version, Commit, and BuildTime are injected via ldflags and fall back to
// local-build defaults. Short and Full render them for CLI output.
package version
