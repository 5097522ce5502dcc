package services

import (
	"errors"
	"fmt"

	"curanet/internal/utils"
)

var (
	// ErrNotFound is the parent of every "no such row" error below.
	ErrNotFound = errors.New("not found")

	ErrHospitalNotFound = fmt.Errorf("hospital %w", ErrNotFound)
	ErrDoctorNotFound   = fmt.Errorf("doctor %w", ErrNotFound)
	ErrPatientNotFound  = fmt.Errorf("patient %w", ErrNotFound)

	// ErrDuplicateMedicalID is returned when a patient's medical_id is already taken.
	ErrDuplicateMedicalID = errors.New("medical ID already exists")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports which input fields were rejected and why.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

func newValidationError(err error) *ValidationError {
	return &ValidationError{Fields: utils.ValidationDetails(err), cause: err}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + utils.FormatValidationError(e.cause)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
