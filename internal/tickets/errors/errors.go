package errors

import "errors"

var (
	ErrExhibitionNotFound = errors.New("exhibition not found")

	ErrInvalidID = errors.New("invalid exhibition ID format")

	ErrInsufficientSlots = errors.New("not enough slots available")
)
