package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid uniqueLink or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
