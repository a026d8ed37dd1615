package ingest

import "errors"

// Sentinel kinds for snapshot parsing errors.
var (
	ErrEmptySnapshot = errors.New("empty snapshot file")
	ErrMissingHeader = errors.New("missing or malformed header")
	ErrUnknownGender = errors.New("unknown gender")
)
