package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrOpen    = errors.New("open ratings file failed")
	ErrParse   = errors.New("parse ratings file failed")
	ErrWrite   = errors.New("write ratings file failed")
	ErrReplace = errors.New("replace ratings file failed")
)
