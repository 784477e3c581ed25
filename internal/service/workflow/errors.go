package workflow

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("actor is not allowed to perform this transition")
	ErrUnknownStatus     = errors.New("unknown delivery status")
	ErrNotesTooLong      = errors.New("notes exceed length limit")
)
