package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// Unique index names. Storage violations are reported against these names.
const (
	ConstraintParentEmail           = "idx_parents_email"
	ConstraintParentPhone           = "idx_parents_phone"
	ConstraintChildEmail            = "idx_children_email"
	ConstraintRegistrationChildCamp = "idx_registrations_child_camp"
)

// ConstraintError reports which storage constraint rejected a write. Code is
// the SQLSTATE of the violation.
type ConstraintError struct {
	Constraint string
	Code       string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %q violated (%s)", e.Constraint, e.Code)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConstraintName returns the violated constraint, or "" if err is not a ConstraintError.
func ConstraintName(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindBadRequest
	KindConflict
	KindNotFound
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError is the error type usecases hand to the delivery layer. Message is
// safe to show to the caller; Err is for the server log only.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err; anything that is not an AppError is internal.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
