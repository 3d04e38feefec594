package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/model"
	"gallery/pkg/validation"
)

type TicketValidator struct {
	validate    *validator.Validate
	maxQuantity int
	logger      *logger.Logger
}

func NewTicketValidator(maxQuantity int, log *logger.Logger) *TicketValidator {
	v := validation.New(log)
	log.Info("Ticket validator initialized successfully", "max_quantity", maxQuantity)

	return &TicketValidator{
		validate:    v,
		maxQuantity: maxQuantity,
		logger:      log,
	}
}

// ValidateRequest checks a reservation request, including the per-reservation
// ticket cap.
func (v *TicketValidator) ValidateRequest(req *model.TicketRequest) error {
	var errs validation.ValidationErrors
	if err := validation.Struct(v.validate, req); err != nil {
		verrs, ok := err.(validation.ValidationErrors)
		if !ok {
			return err
		}
		errs = verrs
	}
	if v.maxQuantity > 0 && req.Quantity > v.maxQuantity {
		errs = append(errs, validation.ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must be at most %d", v.maxQuantity),
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
