package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LibreProvider translates through a LibreTranslate-compatible endpoint.
type LibreProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewLibreProvider creates a provider for the given /translate endpoint.
// The API key is optional (self-hosted instances run without one).
func NewLibreProvider(endpoint, apiKey string) (*LibreProvider, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("translate: libre endpoint is required")
	}
	return &LibreProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (p *LibreProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	body, err := json.Marshal(libreRequest{
		Q:      text,
		Source: "auto",
		Target: targetLang,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translate: failed to marshal libre request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("translate: failed to build libre request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("translate: libre call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translate: libre API error %d: %s", resp.StatusCode, string(raw))
	}

	var out libreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("translate: failed to decode libre response: %w", err)
	}
	return out.TranslatedText, nil
}

func (p *LibreProvider) Name() string { return "libretranslate" }
