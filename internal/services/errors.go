package services

import (
	"errors"
	"fmt"
)

var (
	// Lookup misses
	ErrDepartmentNotFound = errors.New("department not found")
	ErrYearNotFound       = errors.New("year not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTimetableNotFound  = errors.New("timetable not found")

	// Credential machine. Composite-key mismatches always collapse into
	// ErrInvalidCredentials so callers cannot learn which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRollNumberNotFound = errors.New("roll number not found in this section")
	ErrFirstLoginPasskey  = errors.New("first login requires DOB (YYYY-MM-DD) as passkey")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailNotFound      = errors.New("email not found in system")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrInvalidState       = errors.New("operation not valid in current login state")

	// Registry conflicts
	ErrRollNumberExists = errors.New("a student with this roll number already exists")

	// Destructive-action gating
	ErrConfirmationRequired = errors.New("operator confirmation required")
	ErrAdminOnly            = errors.New("operation requires administrator role")
)

// ValidationError is a business rule failure on a single field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}
