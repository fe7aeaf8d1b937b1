package domain

import "errors"

var (
	// ErrNotFound is returned when an operation references an unknown id
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when a record id is already present
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidRecord is returned for records that cannot be stored
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidServings is returned when servings would drop below one
	ErrInvalidServings = errors.New("servings must be at least 1")
	// ErrInvalidCount is returned for negative ingredient counts
	ErrInvalidCount = errors.New("count must not be negative")
	// ErrInvalidPage is returned for out-of-range result pages
	ErrInvalidPage = errors.New("page out of range")
	// ErrEmptyQuery is returned when searching with a blank query
	ErrEmptyQuery = errors.New("empty search query")
)
