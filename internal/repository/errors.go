package repository

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested
	// id or category.
	ErrNotFound = errors.New("entity not found")
)
