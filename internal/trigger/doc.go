// Package trigger implements the alarm side of the clock core: the single
// alarm definition, HH:MM validation, edge-triggered match detection
// against per-second time snapshots, and the firing/playing phase.
package trigger
