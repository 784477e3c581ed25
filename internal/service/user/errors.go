package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("user already exists")
)
