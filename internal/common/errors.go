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

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrAmbiguousCarrier means two or more profiles tied on detection
	// confidence. Surfaced to the caller for manual disambiguation, never
	// auto-resolved.
	ErrAmbiguousCarrier = errors.New("ambiguous carrier detection")

	// ErrInvalidFragment means a date/time span could not be parsed to at
	// least day+month.
	ErrInvalidFragment = errors.New("invalid temporal fragment")

	// ErrStoreUnavailable means the remote store is unreachable or timed out.
	// The local cache is left untouched and resolution degrades to cache-only.
	ErrStoreUnavailable = errors.New("catalog store unavailable")

	// ErrSyncConflict means a push hit an existing same-named remote row.
	// Resolved by the fixed remote-wins policy and reported as a warning.
	ErrSyncConflict = errors.New("sync conflict")
)

// IsConflict reports whether err is a name/alias uniqueness collision.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSyncConflict)
}

// NewAppError builds an AppError with a machine code and wrapped cause.
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

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
