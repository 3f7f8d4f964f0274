package openaichat

// Request is a single-turn chat completion request.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response carries the completion text.
type Response struct {
	Text string
}

// --- Wire types for the chat/completions REST API ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// ErrorResponse is the error body returned by OpenAI-compatible APIs.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
