// Package alarm contains the domain model for the single scheduled alarm:
// the validated HH:MM definition, the edge-triggered tick match, and a
// Clone helper that keeps trigger internals from leaking.
package alarm
