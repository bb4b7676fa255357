package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Daymon_Go/internal/game"
	"github.com/osse101/Daymon_Go/internal/roster"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("gauge", validateGauge)
	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("nocontrol", validateNoControl)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "gauge":
			errs[field] = "Must be one of hunger, happiness, exp"
		case "direction":
			errs[field] = "Must be prev or next"
		case "gte", "lte", "lt":
			errs[field] = "Out of range"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall", "nocontrol":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validGauges lists the care bars the debug controls may move
var validGauges = map[roster.GaugeKind]bool{
	roster.GaugeHunger:    true,
	roster.GaugeHappiness: true,
	roster.GaugeExp:       true,
}

func validateGauge(fl validator.FieldLevel) bool {
	return validGauges[roster.GaugeKind(fl.Field().String())]
}

func validateDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case game.DirectionPrev, game.DirectionNext:
		return true
	}
	return false
}

func validateNoControl(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}
