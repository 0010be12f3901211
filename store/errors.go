package store

import "errors"

// Domain error sentinels. Handlers match on these with errors.Is and map them
// to HTTP statuses; everything else is treated as an internal failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
