package assistant

import "context"

// UseCase is the smart message router.
type UseCase interface {
	// Route handles one inbound message end to end: translate, classify,
	// dispatch, compose. It never fails: branch failures are masked into a
	// generic failure reply with the cause logged.
	Route(ctx context.Context, input RouteInput) Reply

	// TrackOrder is the direct lookup path that bypasses classification.
	// Backend failures surface as errors for the delivery layer to map.
	TrackOrder(ctx context.Context, input TrackInput) (Reply, error)
}
