package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers
// compare with errors.Is; repositories wrap it with entity context.
var ErrNotFound = errors.New("not found")
