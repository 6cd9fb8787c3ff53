package service // domain errors

import "errors"

// Domain failures.  None of them is transient; retrying with the same
// input yields the same result.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrContactNotFound    = errors.New("contact not found")
)
