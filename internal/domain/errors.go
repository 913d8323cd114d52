package domain

import "errors"

var (
	// ErrNotFound targets a nonexistent alert/message/notification id.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers missing or malformed identifying fields on
	// create/send; raised before any mutation occurs.
	ErrValidation = errors.New("validation failed")
	// ErrPersistenceUnavailable means the blob backend failed or returned
	// unparsable data. Never masked as "no data".
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
