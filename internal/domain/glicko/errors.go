package glicko

import "errors"

// Sentinel kinds for rating update errors.
var (
	ErrNonFinite = errors.New("non-finite rating")
)
