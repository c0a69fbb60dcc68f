package models

import "errors"

// Validation errors shared by the CLI and the screen controllers
var (
	// ErrEmptyTitle indicates a list title that is empty after trimming
	ErrEmptyTitle = errors.New("list title cannot be empty")

	// ErrTitleTooLong indicates a list title longer than MaxTitleLength
	ErrTitleTooLong = errors.New("list title cannot exceed 100 characters")

	// ErrEmptyItem indicates an item that is empty after trimming
	ErrEmptyItem = errors.New("item cannot be empty")

	// ErrIndexOutOfRange indicates a position that does not reference a displayed item
	ErrIndexOutOfRange = errors.New("item index out of range")

	// ErrListNotFound indicates an id that is not in the list collection
	ErrListNotFound = errors.New("list not found")
)
