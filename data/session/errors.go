package session

import "errors"

var (
	ErrNotFound  = errors.New("session not found")
	ErrCorrupted = errors.New("session value is corrupted")
)
