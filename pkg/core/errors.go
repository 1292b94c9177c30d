package core

import "errors"

// Common errors.
var (
	// ErrNotAnArray is returned by Import when the payload parses as
	// valid JSON but its top level is not an array.
	ErrNotAnArray = errors.New("import payload is not a JSON array")
)
