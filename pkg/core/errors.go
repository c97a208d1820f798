package core

import "errors"

// Common errors.
var (
	ErrInvalidMonth  = errors.New("month out of range")
	ErrInvalidDay    = errors.New("day out of range for month")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidLayout = errors.New("unknown layout")
)
