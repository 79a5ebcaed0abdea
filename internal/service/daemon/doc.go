// Package daemon runs the clock as a long-lived process: it loads
// configuration, opens the preference store, binds the settings mirror,
// wires alarm detection to the tick feed, and drives the scheduler until
// shutdown.
package daemon
