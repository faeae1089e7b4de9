package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/salescopilot/copilot/internal/types"
)

// LLM error codes follow the copilot error pattern.
const (
	ErrProviderNotFound    types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrProviderInitFailed  types.ErrorCode = "LLM_PROVIDER_INIT_FAILED"
	ErrProviderUnavailable types.ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
	ErrUnauthorized        types.ErrorCode = "LLM_UNAUTHORIZED"
	ErrRateLimited         types.ErrorCode = "LLM_RATE_LIMITED"
	ErrInvalidRequest      types.ErrorCode = "LLM_INVALID_REQUEST"
	ErrCompletionFailed    types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrNoJSONFound         types.ErrorCode = "LLM_NO_JSON_FOUND"
	ErrContextCanceled     types.ErrorCode = "LLM_CONTEXT_CANCELED"
	ErrNetworkFailed       types.ErrorCode = "LLM_NETWORK_FAILED"
)

// NewAuthError creates an error for a missing or rejected API key.
func NewAuthError(provider string, cause error) error {
	return types.WrapError(ErrUnauthorized, "provider "+provider+" rejected or is missing credentials", cause)
}

// NewInvalidRequestError creates an error for a malformed request.
func NewInvalidRequestError(msg string) error {
	return types.NewError(ErrInvalidRequest, msg)
}

// TranslateError classifies a raw provider error into a CopilotError
// with a retryability hint. Classification is heuristic: langchaingo
// surfaces provider errors as plain strings.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return types.WrapError(ErrContextCanceled, "provider "+provider+" call canceled", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "api key"):
		return types.WrapError(ErrUnauthorized, "provider "+provider+" authentication failed", err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		e := types.WrapError(ErrRateLimited, "provider "+provider+" rate limited", err)
		e.Retryable = true
		return e
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") || strings.Contains(msg, "timeout"):
		e := types.WrapError(ErrNetworkFailed, "provider "+provider+" unreachable", err)
		e.Retryable = true
		return e
	default:
		return types.WrapError(ErrCompletionFailed, "provider "+provider+" completion failed", err)
	}
}

// IsRetryable reports whether an error is transient and may succeed on retry.
func IsRetryable(err error) bool {
	var ce *types.CopilotError
	if !errors.As(err, &ce) {
		return false
	}
	if ce.Retryable {
		return true
	}
	switch ce.Code {
	case ErrRateLimited, ErrNetworkFailed, ErrProviderUnavailable:
		return true
	default:
		return false
	}
}
