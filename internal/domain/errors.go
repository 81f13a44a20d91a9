package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for content lookups and rendering.
var (
	ErrNotFound           = errors.New("requested content not found")
	ErrContentUnavailable = errors.New("content source unavailable")
	ErrInvalidContent     = errors.New("content failed validation")
)
