package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for copilot errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Skill catalog error codes
const (
	SKILL_LOAD_FAILED   ErrorCode = "SKILL_LOAD_FAILED"
	SKILL_PARSE_FAILED  ErrorCode = "SKILL_PARSE_FAILED"
	SKILL_DUPLICATE_KEY ErrorCode = "SKILL_DUPLICATE_KEY"
	SKILL_INVALID       ErrorCode = "SKILL_INVALID"
	SKILL_DIR_NOT_FOUND ErrorCode = "SKILL_DIR_NOT_FOUND"
)

// Planning error codes
const (
	PLAN_CLIENT_UNAVAILABLE ErrorCode = "PLAN_CLIENT_UNAVAILABLE"
	PLAN_GENERATION_FAILED  ErrorCode = "PLAN_GENERATION_FAILED"
)

// CopilotError is a structured error carrying a code, a message, a
// retryability hint, and an optional wrapped cause.
type CopilotError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *CopilotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *CopilotError) Unwrap() error {
	return e.Cause
}

// NewError creates a CopilotError with the given code and message.
func NewError(code ErrorCode, message string) *CopilotError {
	return &CopilotError{Code: code, Message: message}
}

// WrapError creates a CopilotError wrapping cause.
func WrapError(code ErrorCode, message string, cause error) *CopilotError {
	return &CopilotError{Code: code, Message: message, Cause: cause}
}

// IsCode reports whether err (or anything it wraps) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var ce *CopilotError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Code == code
}
