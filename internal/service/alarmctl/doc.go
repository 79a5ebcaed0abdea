// Package alarmctl implements the one-shot alarm commands: set, clear,
// toggle, and status. They edit the same preference store the daemon
// mirrors, so changes apply when the daemon next loads its state.
package alarmctl
