package usecase

import (
	"context"
	"strings"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/internal/router"
)

// Route handles one inbound message: translate (best-effort), classify,
// dispatch, compose. It owns the single-reply contract: whatever happens
// upstream, the caller gets one reply with non-empty text.
func (uc *implUseCase) Route(ctx context.Context, input assistant.RouteInput) assistant.Reply {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return assistant.Reply{Text: replyMissingMessage}
	}

	// Best-effort normalization into the working language; degrades to
	// pass-through on total provider failure.
	translated := uc.translator.Translate(ctx, msg, uc.targetLang)

	intent, err := uc.router.Classify(ctx, translated)
	if err != nil {
		uc.l.Errorf(ctx, "%s: classifier failed: %v", LogPrefixRoute, err)
		return assistant.Reply{Text: replyFailure}
	}

	var (
		reply assistant.Reply
		herr  error
	)
	switch intent {
	case router.IntentTrack:
		reply, herr = uc.lookupOrders(ctx, extractIdentifier(translated))
	case router.IntentProduct:
		reply, herr = uc.discoverProducts(ctx, translated)
	case router.IntentFaq:
		reply = uc.answerFaq(translated)
	default:
		reply, herr = uc.chatReply(ctx, translated)
	}

	if herr != nil {
		uc.l.Errorf(ctx, "%s: intent %s failed: %v", LogPrefixRoute, intent, herr)
		return assistant.Reply{Text: replyFailure}
	}
	return reply
}

// TrackOrder is the direct lookup path that bypasses translation and
// classification. Backend failures surface to the delivery layer.
func (uc *implUseCase) TrackOrder(ctx context.Context, input assistant.TrackInput) (assistant.Reply, error) {
	return uc.lookupOrders(ctx, strings.TrimSpace(input.Mobile))
}
