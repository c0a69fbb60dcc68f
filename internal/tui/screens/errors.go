package screens

import "errors"

var (
	// ErrNotReady is returned by mutations issued while a screen is loading
	ErrNotReady = errors.New("screen is still loading")
	// ErrNothingPending is returned when confirming without a request
	ErrNothingPending = errors.New("nothing to confirm")
)
