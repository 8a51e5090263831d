package models

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidGuildID = errors.New("invalid guild id")
)
