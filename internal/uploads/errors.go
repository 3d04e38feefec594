package uploads

import (
	"errors"

	apperrors "gallery/pkg/errors"
)

var (
	ErrInvalidDataURI = errors.New("invalid image data")

	ErrUnsupportedType = errors.New("unsupported image type")

	ErrTooLarge = errors.New("image exceeds the maximum size")
)

// ToAppError maps upload failures onto client errors. Other errors become
// internal errors.
func ToAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, ErrInvalidDataURI):
		return apperrors.InvalidInput(err.Error())
	case errors.Is(err, ErrUnsupportedType):
		return apperrors.UnsupportedMediaType(err.Error())
	case errors.Is(err, ErrTooLarge):
		return apperrors.PayloadTooLarge(err.Error())
	}
	return apperrors.Internal("Failed to store image", err)
}
