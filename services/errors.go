package services

import "errors"

// Sentinel errors surfaced to handlers, which map them to HTTP statuses
// with errors.Is. Keeping them here (not in repositories) keeps the
// repository layer free of business vocabulary.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrImageNotFound      = errors.New("image not found")
	ErrNotOwner           = errors.New("you don't have permission to access this image")
	ErrUserNotFound       = errors.New("user not found")
)
