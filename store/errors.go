package store

import "errors"

var (
	// ErrNotFound is returned when no item exists for the requested key.
	ErrNotFound = errors.New("movies: item not found")

	// ErrDecode wraps failures converting between items and DynamoDB attributes.
	ErrDecode = errors.New("movies: malformed item")
)
