package graph

import "errors"

// Sentinel errors for expected domain conditions. Infrastructure failures
// propagate as database.ErrUnavailable.
var (
	// ErrNotFound is returned when a referenced User or Post does not exist.
	ErrNotFound = errors.New("graph: not found")

	// ErrSelfFollow is returned when a user tries to follow themself.
	ErrSelfFollow = errors.New("graph: cannot follow yourself")

	// ErrAlreadyRegistered is returned when a username or email is taken.
	ErrAlreadyRegistered = errors.New("graph: username or email already registered")
)
