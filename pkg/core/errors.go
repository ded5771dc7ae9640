package core

import "errors"

// Common errors.
var (
	ErrNoStore        = errors.New("no grid store configured")
	ErrNoSource       = errors.New("no snapshot source configured")
	ErrNoKeyColumn    = errors.New("no key column configured")
	ErrUnknownAdapter = errors.New("unknown grid store adapter")
)
