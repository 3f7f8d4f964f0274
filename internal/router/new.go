package router

import (
	"context"

	"storefront-assistant/pkg/llmprovider"
	"storefront-assistant/pkg/log"
)

// Router is the interface for intent classification.
type Router interface {
	Classify(ctx context.Context, message string) (Intent, error)
}

// Completer is the subset of llmprovider.Manager the classifier needs.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// SemanticRouter classifies user intent using the completion provider chain.
type SemanticRouter struct {
	llm Completer
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
func New(llm Completer, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
