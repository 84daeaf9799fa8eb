package validator

import (
	"github.com/accessnav-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Closed domain enums validated at the HTTP boundary.
	_ = validate.RegisterValidation("hazard_type", func(fl validator.FieldLevel) bool {
		return domain.IsValidHazardType(fl.Field().String())
	})
	_ = validate.RegisterValidation("vote_value", func(fl validator.FieldLevel) bool {
		return domain.IsValidVote(fl.Field().String())
	})
	_ = validate.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		return domain.IsValidSeverity(fl.Field().String())
	})
	_ = validate.RegisterValidation("mobility_profile", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || domain.IsValidMobilityProfile(s)
	})
}

// Validate runs struct validation against the registered rules.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
