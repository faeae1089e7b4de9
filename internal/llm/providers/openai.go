package providers

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/salescopilot/copilot/internal/llm"
)

// OpenAIProvider implements llm.Provider for OpenAI's GPT models.
type OpenAIProvider struct {
	client *openai.LLM
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider. The API key is taken
// from apiKey or, when empty, from OPENAI_API_KEY.
func NewOpenAIProvider(apiKey, model, baseURL string) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, llm.NewAuthError("openai", nil)
	}

	opts := []openai.Option{openai.WithToken(apiKey)}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, llm.TranslateError("openai", err)
	}

	return &OpenAIProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Models returns information about commonly used OpenAI models.
func (p *OpenAIProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	return []llm.ModelInfo{
		{Name: "gpt-4o", ContextWindow: 128000, MaxOutput: 16384},
		{Name: "gpt-4o-mini", ContextWindow: 128000, MaxOutput: 16384},
		{Name: "gpt-4-turbo", ContextWindow: 128000, MaxOutput: 4096},
	}, nil
}

// Complete sends a completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := p.client.GenerateContent(ctx, toSchemaMessages(req.Messages), buildCallOptions(req)...)
	if err != nil {
		return nil, llm.TranslateError("openai", err)
	}

	model := req.Model
	if model == "" {
		model = p.model
	}
	return fromLangchainResponse(resp, model), nil
}
