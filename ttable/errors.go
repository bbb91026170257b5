package ttable

import "errors"

// ErrInvalidCapacity is returned by New when the configured capacity
// is not positive.
var ErrInvalidCapacity = errors.New("ttable: capacity must be positive")
