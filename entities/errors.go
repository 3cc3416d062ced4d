package entities

import "errors"

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidDate       = errors.New("invalid date")
)
