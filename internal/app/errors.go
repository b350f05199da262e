package app

import "errors"

// Engine-level error taxonomy. Parse failures never surface here: the
// affected optional field or filter is skipped instead.
var (
	// ErrNotFound reports that no record or list matched a lookup.
	ErrNotFound = errors.New("not found")

	// ErrNoListAvailable reports a create with no resolvable target list.
	ErrNoListAvailable = errors.New("no reminder lists available")
)
