package store

import "errors" // Sentinel errors

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")
