package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details flattens the errors for an AppError details map.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// Now is swapped in tests that pin the current year.
var Now = time.Now

// New builds a validator that reports json field names and knows the
// gallery-specific tags.
func New(log *logger.Logger) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	custom := map[string]validator.Func{
		"image_ref":       validateImageRef,
		"not_future_year": validateNotFutureYear,
		"calendar_date":   validateCalendarDate,
		"date_not_before": validateDateNotBefore,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}
	return v
}

// Struct validates s and translates validator errors into ValidationErrors.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Translate(validationErrs)
	}
	return err
}

func Translate(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		out = append(out, ValidationError{Field: err.Field(), Message: message(err)})
	}
	return out
}

func message(err validator.FieldError) string {
	field := err.Field()
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, err.Param())
	case "ltefield":
		return fmt.Sprintf("%s cannot exceed %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(err.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "e164":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "mongodb":
		return fmt.Sprintf("%s must be a valid id", field)
	case "image_ref":
		return fmt.Sprintf("%s must be an image URL, a server path or an uploaded image", field)
	case "not_future_year":
		return fmt.Sprintf("%s cannot be in the future", field)
	case "calendar_date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "date_not_before":
		return fmt.Sprintf("%s cannot be before %s", field, err.Param())
	}
	return err.Error()
}

func validateImageRef(fl validator.FieldLevel) bool {
	ref := strings.TrimSpace(fl.Field().String())
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "data:") {
		return strings.HasPrefix(ref, "data:image/") && strings.Contains(ref, ";base64,")
	}
	if strings.ContainsAny(ref, " \t\r\n<>\"") {
		return false
	}
	lower := strings.ToLower(ref)
	return !strings.HasPrefix(lower, "javascript:") && !strings.HasPrefix(lower, "vbscript:")
}

func validateNotFutureYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(Now().Year())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.DateLayout, fl.Field().String())
	return err == nil
}

// validateDateNotBefore compares against the sibling field named by the param.
func validateDateNotBefore(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}
	end, err := time.Parse(model.DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	start, err := time.Parse(model.DateLayout, other.String())
	if err != nil {
		return true // reported by the start field's own calendar_date check
	}
	return !end.Before(start)
}
