package translate

import (
	"context"
	"fmt"
	"sort"

	"storefront-assistant/config"
	"storefront-assistant/pkg/log"
)

// NewChainFromConfig builds the provider chain from configuration, sorted by
// priority ascending. Providers that fail to initialize are skipped; an
// empty chain is valid and degrades to pass-through.
func NewChainFromConfig(ctx context.Context, cfg *config.TranslateConfig, l log.Logger) *Chain {
	var enabled []config.TranslateProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			l.Warnf(ctx, "translate: skipping provider %s: %v", p.Name, err)
			continue
		}
		providers = append(providers, provider)
	}
	return NewChain(providers, l)
}

func createProvider(ctx context.Context, cfg config.TranslateProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "google":
		return NewGoogleProvider(ctx, cfg.APIKey)
	case "libretranslate":
		return NewLibreProvider(cfg.Endpoint, cfg.APIKey)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
