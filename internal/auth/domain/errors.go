package domain

import "errors"

// Error kinds returned by the store and usecase layers. Delivery maps each
// kind to exactly one HTTP status; anything else is an internal error.
var (
	ErrValidation         = errors.New("invalid user data")
	ErrInvalidID          = errors.New("invalid user id")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authorization required")
)
