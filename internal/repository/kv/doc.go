// Package kv stores widget state as flat string key-value pairs,
// mirroring the persistence model of a browser's localStorage.
// FileStore keeps the map in a JSON file, MemoryStore keeps it in
// process memory for tests and degraded operation.
package kv
