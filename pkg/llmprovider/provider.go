package llmprovider

import "context"

// Provider defines the interface for completion providers.
type Provider interface {
	// Complete sends one system+user completion request and returns the text.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized completion request: one system instruction and one
// user message. Conversation history is out of scope; every request is
// handled statelessly.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response is a normalized completion response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
