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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Usage errors
	ErrUsage             ErrorCode = "USAGE"
	ErrCommandNotDefined ErrorCode = "COMMAND_NOT_DEFINED"

	// Resolution errors
	ErrCommandFileNotFound ErrorCode = "COMMAND_FILE_NOT_FOUND"
	ErrCommandLoad         ErrorCode = "COMMAND_LOAD"
	ErrSymbolNotFound      ErrorCode = "SYMBOL_NOT_FOUND"
	ErrSymbolInvalid       ErrorCode = "SYMBOL_INVALID"

	// Execution errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrCommandPanic  ErrorCode = "COMMAND_PANIC"
)

// ModrunError represents a structured error with code and details
type ModrunError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModrunError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModrunError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModrunError) Is(target error) bool {
	var targetErr *ModrunError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModrunError with the given code and message
func New(code ErrorCode, message string) *ModrunError {
	return &ModrunError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModrunError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModrunError {
	return &ModrunError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModrunError
func Wrap(err error, code ErrorCode, message string) *ModrunError {
	if err == nil {
		return nil
	}
	return &ModrunError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModrunError {
	if err == nil {
		return nil
	}
	return &ModrunError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModrunError) WithDetail(key string, value interface{}) *ModrunError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var modrunErr *ModrunError
	if errors.As(err, &modrunErr) {
		return modrunErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModrunError
func GetErrorCode(err error) ErrorCode {
	var modrunErr *ModrunError
	if errors.As(err, &modrunErr) {
		return modrunErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModrunError
func GetErrorDetails(err error) map[string]interface{} {
	var modrunErr *ModrunError
	if errors.As(err, &modrunErr) {
		return modrunErr.Details
	}
	return nil
}

// IsConfigError reports whether err belongs to the configuration
// failure category: missing source, parse failure, schema violation.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigNotFound, ErrConfigParse, ErrConfigInvalid:
		return true
	}
	return false
}

// IsUsageError reports whether err belongs to the usage failure
// category: no command supplied, or a name absent from configuration.
func IsUsageError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUsage, ErrCommandNotDefined:
		return true
	}
	return false
}

// IsResolutionError reports whether err belongs to the resolution
// failure category: missing command file, load failure, missing or
// invalid symbol.
func IsResolutionError(err error) bool {
	switch GetErrorCode(err) {
	case ErrCommandFileNotFound, ErrCommandLoad, ErrSymbolNotFound, ErrSymbolInvalid:
		return true
	}
	return false
}

// IsExecutionError reports whether err belongs to the execution failure
// category: the command returned an error or panicked.
func IsExecutionError(err error) bool {
	switch GetErrorCode(err) {
	case ErrCommandFailed, ErrCommandPanic:
		return true
	}
	return false
}
