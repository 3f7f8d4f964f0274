package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// IGemini defines the interface for the Gemini API client.
type IGemini interface {
	GenerateText(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// Config configures the Gemini client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// New creates a new Gemini client.
func New(cfg Config) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return newGeminiImpl(cfg), nil
}
