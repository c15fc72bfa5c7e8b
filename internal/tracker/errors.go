// Package tracker implements the habit, goal, and day-annotation stores on
// top of a key-value persistence adapter.
package tracker

import "errors"

var (
	// ErrValidation reports malformed or missing required input. The store
	// is left unchanged when it is returned.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports an identifier absent from the collection.
	ErrNotFound = errors.New("not found")

	// ErrDeserialization reports a persisted blob that does not match its
	// expected shape. Stores recover from it at load time by starting empty;
	// it only reaches callers through explicit imports.
	ErrDeserialization = errors.New("unreadable stored data")
)
