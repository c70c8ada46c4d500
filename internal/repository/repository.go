// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic.
package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no live row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateFile is returned when a platform file id is already stored by anyone.
	ErrDuplicateFile = errors.New("platform file id already stored")
	// ErrDuplicateToken is returned when a share token is already taken.
	ErrDuplicateToken = errors.New("share token already exists")
	// ErrDuplicateBookmark is returned when the owner already has an active bookmark for the URL.
	ErrDuplicateBookmark = errors.New("bookmark already exists")
)
