package mutate

import (
	"errors"
	"fmt"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// MutationError represents a rejected mutation.
//
// The taxonomy:
//   - Input: malformed/empty request (e.g. empty product list)
//   - Validation: one or more field constraint violations
//   - NotFound: a referenced customer/product id does not exist
//   - Store: the store was unreachable or a write failed for reasons
//     outside validation
//
// MutationError includes structured fields for diagnostics and for batch
// operations that accumulate per-item messages.
type MutationError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Fields carries the individual violations for validation errors.
	Fields []model.FieldError

	// Err is the underlying cause (for store errors).
	Err error
}

// ErrorCode categorizes mutation errors.
type ErrorCode string

const (
	// ErrCodeInput indicates a malformed or empty request.
	ErrCodeInput ErrorCode = "INPUT"

	// ErrCodeValidation indicates field constraint violations.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeNotFound indicates a dangling entity reference.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeStore indicates an underlying store failure.
	ErrCodeStore ErrorCode = "STORE"
)

// Error implements the error interface.
func (e *MutationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Code, model.JoinFieldErrors(e.Fields))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// IsInput returns true if the error is an input error.
// Uses errors.As to handle wrapped errors.
func IsInput(err error) bool {
	return hasCode(err, ErrCodeInput)
}

// IsValidation returns true if the error is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsNotFound returns true if the error is a not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsStore returns true if the error is a store error.
func IsStore(err error) bool {
	return hasCode(err, ErrCodeStore)
}

func hasCode(err error, code ErrorCode) bool {
	var me *MutationError
	if errors.As(err, &me) {
		return me.Code == code
	}
	return false
}

// NewInputError creates a MutationError for a malformed request.
func NewInputError(message string) *MutationError {
	return &MutationError{Code: ErrCodeInput, Message: message}
}

// NewValidationError creates a MutationError carrying field violations.
func NewValidationError(fields []model.FieldError) *MutationError {
	return &MutationError{
		Code:    ErrCodeValidation,
		Message: model.JoinFieldErrors(fields),
		Fields:  fields,
	}
}

// NewNotFoundError creates a MutationError for a dangling reference.
func NewNotFoundError(message string) *MutationError {
	return &MutationError{Code: ErrCodeNotFound, Message: message}
}

// NewStoreError creates a MutationError wrapping a store failure.
func NewStoreError(op string, err error) *MutationError {
	return &MutationError{Code: ErrCodeStore, Message: op, Err: err}
}
