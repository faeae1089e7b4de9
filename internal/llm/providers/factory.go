package providers

import (
	"fmt"

	"github.com/salescopilot/copilot/internal/llm"
	"github.com/salescopilot/copilot/internal/types"
)

// New constructs a provider by name. Supported names: "openai",
// "anthropic".
func New(name, apiKey, model, baseURL string) (llm.Provider, error) {
	switch name {
	case "openai":
		return NewOpenAIProvider(apiKey, model, baseURL)
	case "anthropic":
		return NewAnthropicProvider(apiKey, model)
	default:
		return nil, types.NewError(llm.ErrProviderNotFound,
			fmt.Sprintf("unknown LLM provider %q", name))
	}
}
