package translate

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"
)

// GoogleProvider translates through the Google Cloud Translation v2 API
// with API-key auth.
type GoogleProvider struct {
	svc *translatev2.Service
}

// NewGoogleProvider builds the Translation service client.
func NewGoogleProvider(ctx context.Context, apiKey string) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("translate: google API key is required")
	}
	svc, err := translatev2.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("translate: failed to create google service: %w", err)
	}
	return &GoogleProvider{svc: svc}, nil
}

func (p *GoogleProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	resp, err := p.svc.Translations.List([]string{text}, targetLang).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("translate: google API call failed: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("translate: google returned no translations")
	}
	return resp.Translations[0].TranslatedText, nil
}

func (p *GoogleProvider) Name() string { return "google" }
