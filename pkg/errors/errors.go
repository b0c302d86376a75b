package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Environment store errors
	ErrEnvRead         ErrorCode = "ENV_READ"
	ErrEnvWrite        ErrorCode = "ENV_WRITE"
	ErrEnvWritePartial ErrorCode = "ENV_WRITE_PARTIAL"

	// Backup errors
	ErrBackupWrite    ErrorCode = "BACKUP_WRITE"
	ErrBackupList     ErrorCode = "BACKUP_LIST"
	ErrBackupNotFound ErrorCode = "BACKUP_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Prompt errors
	ErrPromptRead ErrorCode = "PROMPT_READ"
)

// PathtidyError represents a structured error with code and details
type PathtidyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathtidyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathtidyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathtidyError) Is(target error) bool {
	var targetErr *PathtidyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail attaches a named detail to the error and returns it
func (e *PathtidyError) WithDetail(key string, value interface{}) *PathtidyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new PathtidyError with the given code and message
func New(code ErrorCode, message string) *PathtidyError {
	return &PathtidyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathtidyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathtidyError {
	return &PathtidyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathtidyError
func Wrap(err error, code ErrorCode, message string) *PathtidyError {
	if err == nil {
		return nil
	}
	return &PathtidyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathtidyError {
	if err == nil {
		return nil
	}
	return &PathtidyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown for
// foreign errors
func GetCode(err error) ErrorCode {
	var ptErr *PathtidyError
	if errors.As(err, &ptErr) {
		return ptErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether the error carries the given code
func IsCode(err error, code ErrorCode) bool {
	var ptErr *PathtidyError
	if errors.As(err, &ptErr) {
		return ptErr.Code == code
	}
	return false
}
