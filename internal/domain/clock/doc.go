// Package clock holds the derived time model shared by the engine and its
// listeners: the per-second TimeValue snapshot and the analog HandAngles
// computed from its raw fields.
package clock
