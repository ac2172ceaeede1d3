package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrDoctorNotFound signals that no doctor matches the given ID.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrAppointmentNotFound signals that no appointment matches the given ID.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ValidationError signals missing or malformed required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ConflictError signals that a proposed appointment interval overlaps an
// existing one for the same doctor.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError() error {
	return &ConflictError{Message: "Time slot unavailable"}
}

// InvalidIDError signals a syntactically malformed identifier.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid identifier: %s", e.ID)
}
