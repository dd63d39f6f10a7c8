package selector

import "errors"

// Sentinel kinds for selection errors.
var (
	ErrTooFewItems = errors.New("need at least 2 items to pick a pair")
)
