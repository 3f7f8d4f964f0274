package translate

import "context"

// Provider is a single translation backend.
type Provider interface {
	// Translate returns text translated into the target language, or an
	// error. An empty result is treated as an error by the chain.
	Translate(ctx context.Context, text, targetLang string) (string, error)

	// Name returns the provider name for logs.
	Name() string
}
