package utils

import "errors"

var (
	ErrFirmNotFound   = errors.New("firm not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("support ticket not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	ErrDatabaseError = errors.New("database error")
	// ErrCascadeFailed reports a cascade discard that was rolled back; no
	// partial discard is ever left behind.
	ErrCascadeFailed = errors.New("cascade discard failed")
)
