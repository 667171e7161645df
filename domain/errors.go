package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNilQueryInput = errors.New("query options is nil")
	ErrTooLarge      = errors.New("process set exceeds configured limits")
	ErrAuthDisabled  = errors.New("token authentication is disabled")
)
