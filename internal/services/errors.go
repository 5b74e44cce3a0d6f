package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrNotFound           = errors.New("recipe not found")
	ErrForbidden          = errors.New("not authorized")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
