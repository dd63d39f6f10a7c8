package oracle

import "errors"

// Sentinel kinds for oracle errors.
var (
	ErrAborted = errors.New("comparison aborted")
)
