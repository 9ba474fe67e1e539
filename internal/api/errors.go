package api

import (
	"errors"
	"net/http"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/catalogue"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/fieldstock/inventory-backend/internal/scope"
	"github.com/jackc/pgx/v5"
)

const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeAuthRequired      = "AUTHENTICATION_REQUIRED"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeInternalError     = "INTERNAL_ERROR"
)

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// additional error context
type ErrorContext map[string]interface{}

// ErrorResponse is the wire envelope for every error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
	Context ErrorContext  `json:"context,omitempty"`
}

// builder pattern
type ErrorBuilder struct {
	Code    string
	Message string
	Details []ErrorDetail
	Context ErrorContext
}

func NewError(code, message string) *ErrorBuilder {
	return &ErrorBuilder{Code: code, Message: message}
}

func (e *ErrorBuilder) WithDetails(details []ErrorDetail) *ErrorBuilder {
	e.Details = details
	return e
}

func (e *ErrorBuilder) WithContext(context ErrorContext) *ErrorBuilder {
	e.Context = context
	return e
}

func (e *ErrorBuilder) Create() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
			Context: e.Context,
		},
	}
}

// builder pattern extensions

func Unauthorized(msg string) *ErrorBuilder {
	return NewError(CodeAuthRequired, msg)
}

func PermissionDenied(msg string) *ErrorBuilder {
	return NewError(CodePermissionDenied, msg)
}

func NotFound(resource string) *ErrorBuilder {
	return NewError(CodeResourceNotFound, resource+" not found")
}

func ValidationErr(msg string, details []ErrorDetail) *ErrorBuilder {
	return NewError(CodeValidationError, msg).WithDetails(details)
}

func InvalidTransition(msg string) *ErrorBuilder {
	return NewError(CodeInvalidTransition, msg)
}

func InternalError(msg string) *ErrorBuilder {
	return NewError(CodeInternalError, msg)
}

func ConflictErr(msg string) *ErrorBuilder {
	return NewError(CodeConflict, msg)
}

// domainError maps engine and authorization failures onto status codes and
// wire codes. Out-of-scope single-object access deliberately renders as a
// not-found so callers cannot probe for IDs outside their scope.
func domainError(resource string, err error) (int, *ErrorBuilder) {
	var forbidden *auth.ForbiddenError
	var outOfScope *scope.OutOfScopeError
	var transition *lifecycle.TransitionError
	var field *lifecycle.FieldError
	var validation *catalogue.ValidationError

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, Unauthorized("Authentication required")
	case errors.As(err, &forbidden):
		return http.StatusForbidden, PermissionDenied("Insufficient permissions")
	case errors.As(err, &outOfScope):
		return http.StatusNotFound, NotFound(resource)
	case errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, NotFound(resource)
	case errors.Is(err, lifecycle.ErrAlreadyBorrowed):
		return http.StatusConflict, ConflictErr("Item is already borrowed")
	case errors.Is(err, lifecycle.ErrAlreadyReturned):
		return http.StatusConflict, ConflictErr("Borrow record is already returned")
	case errors.Is(err, lifecycle.ErrNotBorrowable):
		return http.StatusConflict, InvalidTransition("Item is not available for borrowing")
	case errors.Is(err, lifecycle.ErrVerifyRegression):
		return http.StatusConflict, InvalidTransition("An available item cannot be moved back to verified")
	case errors.As(err, &transition):
		return http.StatusConflict, InvalidTransition(transition.Error())
	case errors.Is(err, lifecycle.ErrBorrowerInactive):
		return http.StatusBadRequest, ValidationErr("Borrower account is inactive", nil)
	case errors.As(err, &field):
		return http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: field.Field, Message: field.Reason}})
	case errors.As(err, &validation):
		return http.StatusBadRequest, ValidationErr("Invalid attribute value", []ErrorDetail{{Field: validation.Key, Message: validation.Error()}})
	}
	return http.StatusInternalServerError, InternalError("An unexpected error occurred.")
}
