package usecase

import (
	"context"
	"math/rand/v2"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/internal/assistant/repository"
	"storefront-assistant/internal/router"
	"storefront-assistant/pkg/llmprovider"
	pkgLog "storefront-assistant/pkg/log"
)

// Completer is the subset of llmprovider.Manager the chat branch needs.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Translator is the subset of the translation chain the router needs.
// Best-effort by contract: it returns text, never an error.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) string
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.CommerceRepository
	llm        Completer
	router     router.Router
	translator Translator
	targetLang string
	storeURL   string

	// injectable for deterministic tests of the random-pick stage
	randIntN func(n int) int
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CommerceRepository,
	llm Completer,
	rt router.Router,
	translator Translator,
	targetLang string,
	storeURL string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		llm:        llm,
		router:     rt,
		translator: translator,
		targetLang: targetLang,
		storeURL:   storeURL,
		randIntN:   rand.IntN,
	}
}
