package wpconfig

import "errors"

var (
	// ErrNoUpdates is returned when no options were supplied at all.
	ErrNoUpdates = errors.New("nothing to update")

	// ErrInvalidPrefix is returned for a table prefix containing characters
	// outside [A-Za-z0-9_].
	ErrInvalidPrefix = errors.New("table prefix may contain only letters, numbers, and underscores")

	// ErrSentinelNotFound is returned when extra PHP should be spliced in
	// but the document has no sentinel marker comment.
	ErrSentinelNotFound = errors.New(`sentinel comment "` + Sentinel + `" not found`)

	// ErrNotPHP is returned when the document has no PHP open tag and so
	// cannot be read as configuration.
	ErrNotPHP = errors.New("no PHP open tag found")
)
