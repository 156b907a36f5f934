package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrImmutableField indicates an edit to a field that is frozen once the resource is in use.
var ErrImmutableField = errors.New("field is immutable")

// ErrCapacityExceeded indicates that a batch was larger than the plan's remaining capacity.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrQuotaExceeded indicates that the plan's employee limit has been reached.
var ErrQuotaExceeded = errors.New("employee quota exceeded")

// ErrCreation indicates that an individual record was rejected on creation.
var ErrCreation = errors.New("creation failed")

// ErrParse indicates that an uploaded file could not be decoded into rows.
var ErrParse = errors.New("parse error")

// ErrInternal is returned when an unexpected infrastructure failure is hidden from callers.
var ErrInternal = errors.New("internal error")

// ValidationError is a field or row level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ImmutableFieldError lists the fields an edit attempted to change on an in-use resource.
type ImmutableFieldError struct {
	Resource string
	Fields   []string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s is referenced by employees; cannot change %s", e.Resource, strings.Join(e.Fields, ", "))
}

func (e *ImmutableFieldError) Is(target error) bool {
	return target == ErrImmutableField
}

// ParseError reports an uploaded file that produced no usable rows.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// CreationError is a remote rejection of a single record.
type CreationError struct {
	Row int
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

func (e *CreationError) Is(target error) bool {
	return target == ErrCreation
}

// AppError carries an HTTP-ish status code for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	return target == ErrInternal
}
