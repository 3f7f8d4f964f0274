package gemini

const (
	// DefaultAPIURL is the Gemini REST endpoint prefix.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the default model to use.
	DefaultModel = "gemini-2.0-flash"
)
