package validator

import (
	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/model"
	"gallery/pkg/validation"
)

type ContactValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewContactValidator(log *logger.Logger) *ContactValidator {
	v := validation.New(log)
	log.Info("Contact validator initialized successfully")

	return &ContactValidator{
		validate: v,
		logger:   log,
	}
}

func (v *ContactValidator) Validate(m *model.ContactMessage) error {
	return validation.Struct(v.validate, m)
}

func (v *ContactValidator) ValidateStatus(u *model.MessageStatusUpdate) error {
	return validation.Struct(v.validate, u)
}
