package router

import (
	"context"
	"fmt"

	"storefront-assistant/pkg/llmprovider"
)

// Classify determines user intent from a message. A hard provider failure
// propagates as an error so the caller can distinguish "the classifier is
// down" from "the label didn't parse". Only the latter silently defaults
// to chat.
func (r *SemanticRouter) Classify(ctx context.Context, message string) (Intent, error) {
	resp, err := r.llm.Complete(ctx, &llmprovider.Request{
		System:      PromptClassifySystem,
		User:        message,
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: completion failed: %w", LogPrefixClassify, err)
	}

	intent := ParseIntent(resp.Text)
	r.l.Infof(ctx, "%s: %q classified as %s (provider: %s)", LogPrefixClassify, truncate(message, 80), intent, resp.ProviderName)
	return intent, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
