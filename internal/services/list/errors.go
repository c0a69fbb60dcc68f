package list

import "errors"

// Domain errors for the list service
var (
	// Storage errors; the gateway has already logged the cause
	ErrLoadFailed   = errors.New("failed to read saved lists")
	ErrSaveFailed   = errors.New("failed to save changes")
	ErrDeleteFailed = errors.New("failed to delete list")
	ErrClearFailed  = errors.New("failed to clear data")
	ErrPruneFailed  = errors.New("failed to prune orphaned items")
)
