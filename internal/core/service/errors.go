package service

import "errors"

// Domain errors. Handlers match these with errors.Is and map them to
// responses; anything else is treated as a store failure.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
)
