package usecase

import (
	"context"
	"fmt"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/pkg/llmprovider"
)

// chatReply handles the open-ended branch through the completion chain.
func (uc *implUseCase) chatReply(ctx context.Context, message string) (assistant.Reply, error) {
	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		System:      promptChatSystem,
		User:        message,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return assistant.Reply{}, fmt.Errorf("%s: %w", LogPrefixChat, err)
	}
	if resp.Text == "" {
		return assistant.Reply{}, fmt.Errorf("%s: empty completion", LogPrefixChat)
	}
	return assistant.Reply{Text: resp.Text}, nil
}
