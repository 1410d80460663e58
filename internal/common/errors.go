package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes used in AppError.Code.
const (
	CodeTemplateNotFound    = "TEMPLATE_NOT_FOUND"
	CodeFieldNotRecoverable = "FIELD_NOT_RECOVERABLE"
	CodeMalformedNumeric    = "MALFORMED_NUMERIC_TOKEN"
	CodeUpstreamExtraction  = "UPSTREAM_EXTRACTION_FAILURE"
	CodeConfig              = "CONFIG_ERROR"
)

// Common application errors. TemplateNotFound and UpstreamExtraction are
// fatal for a single document; everything else is absorbed as an omitted or
// sentineled field.
var (
	ErrTemplateNotFound   = errors.New("no template matches document")
	ErrUpstreamExtraction = errors.New("upstream text extraction produced no usable text")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrInternal           = errors.New("internal error")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
