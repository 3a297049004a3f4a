package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground struct validation plus the registry of
// institute-specific rules.
type Validator struct {
	validate *validator.Validate
}

// ValidationError is one failed field check.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerInstituteRules()
	return v
}

// Validate runs struct tag validation and converts failures to ValidationErrors.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func ToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   fe.Field(),
				Message: messageFor(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return errs
	}
	return ValidationErrors{{Field: "", Message: err.Error()}}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "semester_label":
		return "must be 1st or 2nd"
	case "dob_date":
		return "must be a YYYY-MM-DD date"
	case "mark_range":
		return "must be between 0 and 100"
	case "weekday":
		return "must be a Monday-Friday weekday name"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func (v *Validator) registerInstituteRules() {
	// Semester labels as published on marksheets
	v.validate.RegisterValidation("semester_label", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "1st" || s == "2nd"
	})

	// DOB doubles as the first-login passkey, so the stored form must be strict
	v.validate.RegisterValidation("dob_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// CAT scores and attendance percentages
	v.validate.RegisterValidation("mark_range", func(fl validator.FieldLevel) bool {
		m := fl.Field().Float()
		return m >= 0 && m <= 100
	})

	v.validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		switch strings.TrimSpace(fl.Field().String()) {
		case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday":
			return true
		}
		return false
	})
}
