package errors

import "errors"

var (
	ErrNotFound = errors.New("exhibition not found")

	ErrInvalidID = errors.New("invalid exhibition ID format")

	ErrSlotsChanged = errors.New("open slots changed during update")
)
