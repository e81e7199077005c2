package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from the connector's upstream error taxonomy.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates required upstream credentials are missing.
	// Surfaces reject calls with this before any network activity happens.
	ErrNotConfigured = errors.New("mindbody credentials not configured")

	// ErrSyncInProgress indicates a mirror sync is already running.
	ErrSyncInProgress = errors.New("sync in progress")

	// ErrMirrorUnavailable indicates the local mirror store is not configured.
	// Sync operations are disabled without it.
	ErrMirrorUnavailable = errors.New("mirror store unavailable")
)
