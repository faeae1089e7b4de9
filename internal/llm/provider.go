package llm

import "context"

// Provider defines the interface implemented by all LLM backends
// (Anthropic Claude, OpenAI GPT, etc.).
type Provider interface {
	// Name returns the provider name (e.g. "anthropic", "openai").
	Name() string

	// Models returns information about the models this provider offers.
	Models(ctx context.Context) ([]ModelInfo, error)

	// Complete sends a completion request and blocks until the full
	// response is available.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// ModelInfo contains metadata about a model.
type ModelInfo struct {
	// Name is the model identifier (e.g. "gpt-4o", "claude-sonnet-4-5").
	Name string `json:"name"`

	// ContextWindow is the maximum number of input tokens.
	ContextWindow int `json:"context_window"`

	// MaxOutput is the maximum number of tokens the model can generate.
	MaxOutput int `json:"max_output"`
}

// CompletionRequest is a provider-agnostic completion request.
type CompletionRequest struct {
	// Model overrides the provider's default model when non-empty.
	Model string `json:"model,omitempty"`

	// Messages is the ordered conversation to complete.
	Messages []Message `json:"messages"`

	// Temperature controls sampling randomness. Nil uses the provider default.
	Temperature *float64 `json:"temperature,omitempty"`

	// MaxTokens caps the response length. Zero uses the provider default.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// Validate checks the request is well-formed.
func (r CompletionRequest) Validate() error {
	if len(r.Messages) == 0 {
		return NewInvalidRequestError("completion request has no messages")
	}
	for _, m := range r.Messages {
		if err := m.Validate(); err != nil {
			return NewInvalidRequestError(err.Error())
		}
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 2) {
		return NewInvalidRequestError("temperature must be in [0,2]")
	}
	return nil
}

// CompletionResponse is a provider-agnostic completion response.
type CompletionResponse struct {
	// Message is the assistant message produced by the model.
	Message Message `json:"message"`

	// Model names the model that produced the response.
	Model string `json:"model,omitempty"`

	// StopReason indicates why generation stopped, when reported.
	StopReason string `json:"stop_reason,omitempty"`
}
