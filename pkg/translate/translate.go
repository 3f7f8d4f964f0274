package translate

import (
	"context"
	"strings"

	"storefront-assistant/pkg/log"
)

// Chain tries translation providers in order and returns the first
// successful result. Translation is best-effort: when every provider fails
// the original text is returned unchanged and no error surfaces to the
// caller. Provider order is priority order.
type Chain struct {
	providers []Provider
	l         log.Logger
}

// NewChain creates a translation chain over the given providers.
func NewChain(providers []Provider, l log.Logger) *Chain {
	return &Chain{providers: providers, l: l}
}

// Translate translates text into targetLang, falling back through the
// provider list. Never fails the caller.
func (c *Chain) Translate(ctx context.Context, text, targetLang string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	for _, p := range c.providers {
		out, err := p.Translate(ctx, text, targetLang)
		if err != nil {
			c.l.Warnf(ctx, "translate: provider %s failed: %v", p.Name(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			c.l.Warnf(ctx, "translate: provider %s returned empty output", p.Name())
			continue
		}
		return out
	}

	// Pass-through: losing translation must not block the request.
	return text
}
