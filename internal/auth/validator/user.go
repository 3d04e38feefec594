package validator

import (
	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/validation"
)

type UserValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewUserValidator(log *logger.Logger) *UserValidator {
	return &UserValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

// Validate checks a RegisterRequest or LoginRequest.
func (v *UserValidator) Validate(req any) error {
	return validation.Struct(v.validate, req)
}
