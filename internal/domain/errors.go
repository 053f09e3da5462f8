package domain

import "errors"

// Run-fatal error classes. Every pipeline failure wraps exactly one of
// these; callers classify with errors.Is. None of them are retried and
// none have a fallback path.
var (
	// ErrNotFound: the location lookup yielded nothing.
	ErrNotFound = errors.New("not found")
	// ErrValidation: an upstream payload is missing its expected shape.
	ErrValidation = errors.New("invalid payload")
	// ErrNetwork: a remote call failed at the transport level.
	ErrNetwork = errors.New("network failure")
	// ErrStorage: the asset upload failed.
	ErrStorage = errors.New("storage failure")
	// ErrPersistence: a database write failed.
	ErrPersistence = errors.New("persistence failure")
)
