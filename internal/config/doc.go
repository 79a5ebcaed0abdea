// Package config defines the YAML bootstrap settings for the chime binary
// and provides helpers to load, validate and save them.
//
// These settings only seed the process; preferences changed while running
// (timezone, format, theme, alarm) are persisted through the key-value
// store instead.
package config
