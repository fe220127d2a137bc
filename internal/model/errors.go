package model

import "errors"

// Error taxonomy for store operations. Callers branch with the predicates
// below; everything else is treated as internal.
var (
	// ErrNotFound: the referenced id no longer exists in the store.
	ErrNotFound = errors.New("not found")

	// ErrPermission: credentials or scopes are insufficient. Fatal,
	// surfaced verbatim, never retried.
	ErrPermission = errors.New("permission denied")

	// ErrTransient: network failure, rate limit or timeout. Safe to retry
	// with backoff.
	ErrTransient = errors.New("transient store error")

	// ErrValidation: the supplied attributes are missing a required key
	// for the kind. Raised before any network call.
	ErrValidation = errors.New("validation error")

	// ErrCodec: a stored metadata field could not be decoded. Isolated to
	// the one record; listings continue past it.
	ErrCodec = errors.New("metadata codec error")
)

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsPermission(err error) bool { return errors.Is(err, ErrPermission) }
func IsTransient(err error) bool  { return errors.Is(err, ErrTransient) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsCodec(err error) bool      { return errors.Is(err, ErrCodec) }
