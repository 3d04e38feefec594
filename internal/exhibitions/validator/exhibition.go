package validator

import (
	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/model"
	"gallery/pkg/validation"
)

type ExhibitionValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewExhibitionValidator(log *logger.Logger) *ExhibitionValidator {
	v := validation.New(log)
	log.Info("Exhibition validator initialized successfully")

	return &ExhibitionValidator{
		validate: v,
		logger:   log,
	}
}

func (v *ExhibitionValidator) Validate(e *model.Exhibition) error {
	return validation.Struct(v.validate, e)
}

func (v *ExhibitionValidator) ValidateUpdate(u *model.ExhibitionUpdate) error {
	return validation.Struct(v.validate, u)
}
