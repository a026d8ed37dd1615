package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNoTimeline = errors.New("timeline not set")
)
