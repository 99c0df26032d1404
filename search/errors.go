package search

import "errors"

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("search: invalid config")
