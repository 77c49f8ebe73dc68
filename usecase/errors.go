package usecase

import "errors"

// Failure taxonomy surfaced to handlers. Every operation fails
// synchronously with one of these; nothing is retried.
var (
	// ErrNotFound: the entity id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: authenticated but not owner (or missing role).
	ErrForbidden = errors.New("forbidden")
	// ErrNotModified: idempotent no-op, nothing was persisted.
	ErrNotModified = errors.New("not modified")
	// ErrUnauthenticated: opaque credential failure. Unknown username and
	// wrong password are indistinguishable.
	ErrUnauthenticated = errors.New("invalid credentials")
	// ErrAlreadyExists: a uniqueness rule (username, tag name) was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNoteArchived: archived notes accept no edit or tag operations.
	ErrNoteArchived = errors.New("note is archived")
	// ErrTagNotAttached: removal list is not a subset of the note's tags.
	ErrTagNotAttached = errors.New("tag ids do not match note tags")
	// ErrTextRequired: a note without text is invalid.
	ErrTextRequired = errors.New("note text is required")
	// ErrNameRequired: a tag without a name is invalid.
	ErrNameRequired = errors.New("tag name is required")
)
