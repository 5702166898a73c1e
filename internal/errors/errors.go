package errors

import (
	"errors"
	"fmt"
)

// Exit codes for configuranator
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitIOError         = 2
	ExitDecodeError     = 3
	ExitEncodeError     = 4
	ExitValidationError = 5
	ExitInputError      = 6
)

// ConfiguranatorError is the base error type for configuranator
type ConfiguranatorError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ConfiguranatorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ConfiguranatorError) Unwrap() error {
	return e.Cause
}

func (e *ConfiguranatorError) ExitCode() int {
	return e.Code
}

// New creates a new ConfiguranatorError
func New(code int, message string) *ConfiguranatorError {
	return &ConfiguranatorError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ConfiguranatorError
func Wrap(code int, message string, cause error) *ConfiguranatorError {
	return &ConfiguranatorError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// IOError returns an error for a configuration file that could not be
// read or written. op is "read" or "write".
func IOError(op, path string, cause error) *ConfiguranatorError {
	return Wrap(ExitIOError, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// DecodeError returns an error for a document that is not valid syntax
// or does not match the schema shape.
func DecodeError(path string, cause error) *ConfiguranatorError {
	return Wrap(ExitDecodeError, fmt.Sprintf("failed to decode %s", path), cause)
}

// EncodeError returns an error for a configuration that could not be serialized
func EncodeError(cause error) *ConfiguranatorError {
	return Wrap(ExitEncodeError, "failed to encode configuration", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ConfiguranatorError {
	return New(ExitValidationError, message)
}

// InputError returns an error for a failed or exhausted operator input stream
func InputError(cause error) *ConfiguranatorError {
	return Wrap(ExitInputError, "failed to read operator input", cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var cfgErr *ConfiguranatorError
	if errors.As(err, &cfgErr) {
		return cfgErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
