// Package domain defines the error taxonomy shared by the repositories and the
// HTTP layer. Repositories wrap these sentinels with entity context; callers
// branch on them with errors.Is.
package domain

import "errors"

var (
	// ErrNotFound indicates that no row matched the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates that an identifier was rejected by the backend's
	// uuid grammar. The wrapped message preserves the offending literal.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrMissingField indicates a not-null violation on a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrEmptyField indicates a required field failed a non-empty check constraint.
	ErrEmptyField = errors.New("empty field")

	// ErrDanglingReference indicates a recipe link pointing at an ingredient
	// that no longer exists.
	ErrDanglingReference = errors.New("dangling ingredient reference")
)
