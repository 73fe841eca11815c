package repository

import "errors"

// ErrNotFound is the sentinel for lookups of unknown ids. Callers that treat
// absence as an expected race (double close, double delete) match it with
// errors.Is and move on.
var ErrNotFound = errors.New("not found")
