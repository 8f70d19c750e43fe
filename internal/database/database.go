// Package database holds the typed repositories over the key/value
// store. Each repository owns its blob exclusively: every operation
// reads the full collection fresh, mutates it, and writes it back in
// a single store write. Nothing is cached between calls.
package database

import "errors"

// ErrNotFound means the caller addressed an entity that is not in the
// collection (unknown report date, unknown complaint id). Per the
// contract that is a caller bug, so it surfaces instead of no-opping.
var ErrNotFound = errors.New("record not found")
