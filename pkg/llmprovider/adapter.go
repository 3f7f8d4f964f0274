package llmprovider

import (
	"context"

	"storefront-assistant/pkg/gemini"
	"storefront-assistant/pkg/openaichat"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateText(ctx, &gemini.Request{
		SystemInstruction: req.System,
		UserText:          req.User,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAIChatAdapter adapts pkg/openaichat to the Provider interface.
type OpenAIChatAdapter struct {
	name   string
	client openaichat.IOpenAIChat
}

// NewOpenAIChatAdapter creates a new adapter for an OpenAI-compatible client.
// The name distinguishes concrete backends (deepseek, openai, local).
func NewOpenAIChatAdapter(name string, client openaichat.IOpenAIChat) *OpenAIChatAdapter {
	return &OpenAIChatAdapter{name: name, client: client}
}

func (a *OpenAIChatAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Complete(ctx, &openaichat.Request{
		System:      req.System,
		User:        req.User,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
	}, nil
}

func (a *OpenAIChatAdapter) Name() string  { return a.name }
func (a *OpenAIChatAdapter) Model() string { return a.client.Model() }
