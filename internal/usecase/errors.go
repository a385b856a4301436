package usecase

import "fmt"

// DomainError is a client-visible, expected condition (duplicate reservation).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure fault, opaque to the caller.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ErrDuplicateLead is the soft rejection for a repeated (email, interest)
// pair. The frontend renders it as a success-like state, not a failure.
var ErrDuplicateLead = &DomainError{
	Code:    "lead_duplicado",
	Message: "Ya tienes una reserva para este servicio",
}

// FieldError is one violated field in a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every violated field of one submission.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msg := "validation failed:"
	for _, e := range v {
		msg += " " + e.Field + " (" + e.Code + ")"
	}
	return msg
}
