package openaichat

import "context"

// IOpenAIChat defines the interface for OpenAI-compatible chat completion
// clients (OpenAI, DeepSeek, local servers).
type IOpenAIChat interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
