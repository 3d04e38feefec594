package validator

import (
	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/model"
	"gallery/pkg/validation"
)

type ArtworkValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewArtworkValidator(log *logger.Logger) *ArtworkValidator {
	v := validation.New(log)
	log.Info("Artwork validator initialized successfully")

	return &ArtworkValidator{
		validate: v,
		logger:   log,
	}
}

func (v *ArtworkValidator) Validate(a *model.Artwork) error {
	return validation.Struct(v.validate, a)
}

func (v *ArtworkValidator) ValidateUpdate(u *model.ArtworkUpdate) error {
	return validation.Struct(v.validate, u)
}
