package repository

import "errors"

// ErrNotFound is returned when a lookup does not match any row. Callers wrap
// it with entity context and test with errors.Is.
var ErrNotFound = errors.New("not found")
