// Package settings mirrors clock and alarm preferences between the core
// components and the key-value store, the way the widget mirrors them into
// localStorage. The core never touches the store itself: this layer seeds
// it at bind time and writes back on every published change.
package settings
