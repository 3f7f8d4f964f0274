package openaichat

const (
	// DefaultBaseURL targets DeepSeek, the cheapest OpenAI-compatible default.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "deepseek-chat"
)
