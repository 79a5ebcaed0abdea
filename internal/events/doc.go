// Package events implements the typed notification feeds exposed by the
// clock engine and the alarm trigger.
//
// Each event kind gets its own Feed so listeners subscribe only to what
// they consume; there is no global dispatcher. Delivery is synchronous
// because the scheduler advances every collaborator within the same tick.
package events
