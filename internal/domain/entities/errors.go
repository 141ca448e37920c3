package entities

import "errors"

// Domain errors
var (
	// Video errors
	ErrInvalidVideoURL = errors.New("invalid youtube url")
	ErrNoCaptions      = errors.New("no captions available")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)
