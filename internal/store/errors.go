package store

import "errors"

// ErrNotFound is returned when no user record exists for the looked-up
// email. Callers translate it into an authentication failure; it is a
// normal outcome, not a store fault.
var ErrNotFound = errors.New("user not found")
