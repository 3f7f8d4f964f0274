package usecase

import (
	"context"

	"storefront-assistant/internal/model"
	"storefront-assistant/internal/router"
	"storefront-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// Mock commerce repository with injectable behavior
type mockCommerceRepo struct {
	listOrdersFunc   func() ([]model.Order, error)
	listProductsFunc func() ([]model.Product, error)
}

func (m *mockCommerceRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	if m.listOrdersFunc != nil {
		return m.listOrdersFunc()
	}
	return nil, nil
}

func (m *mockCommerceRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc()
	}
	return nil, nil
}

// Mock completion provider
type mockCompleter struct {
	completeFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (m *mockCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return &llmprovider.Response{Text: "ok"}, nil
}

// Mock router returning a fixed intent
type mockRouter struct {
	intent router.Intent
	err    error
}

func (m *mockRouter) Classify(ctx context.Context, message string) (router.Intent, error) {
	return m.intent, m.err
}

// Mock translator; pass-through unless overridden
type mockTranslator struct {
	translateFunc func(text, targetLang string) string
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) string {
	if m.translateFunc != nil {
		return m.translateFunc(text, targetLang)
	}
	return text
}

func newTestUseCase(repo *mockCommerceRepo, llm *mockCompleter, rt *mockRouter) *implUseCase {
	if repo == nil {
		repo = &mockCommerceRepo{}
	}
	if llm == nil {
		llm = &mockCompleter{}
	}
	if rt == nil {
		rt = &mockRouter{intent: router.IntentChat}
	}
	return New(&mockLogger{}, repo, llm, rt, &mockTranslator{}, "en", "teststore.myshopify.com")
}
