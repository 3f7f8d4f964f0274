package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/internal/model"
	"storefront-assistant/internal/router"
	"storefront-assistant/pkg/llmprovider"
)

func TestRoute_EmptyMessage(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "   "})
	if reply.Text != replyMissingMessage {
		t.Errorf("expected missing-message prompt, got %q", reply.Text)
	}
}

func TestRoute_ClassifierFailure(t *testing.T) {
	rt := &mockRouter{err: errors.New("all providers failed")}
	uc := newTestUseCase(nil, nil, rt)

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "hello"})
	if reply.Text != replyFailure {
		t.Errorf("expected failure reply, got %q", reply.Text)
	}
}

func TestRoute_TrackIntent(t *testing.T) {
	repo := &mockCommerceRepo{
		listOrdersFunc: func() ([]model.Order, error) {
			return []model.Order{
				{ID: "#1001", CustomerName: "Asha Mehta", Phone: "9898765432", FulfillmentStatus: "fulfilled", TotalPrice: "1499.00", Currency: "INR"},
				{ID: "#1002", CustomerName: "Ravi Kumar", Phone: "9812345678", FulfillmentStatus: "pending", TotalPrice: "799.00", Currency: "INR"},
			}, nil
		},
	}
	uc := newTestUseCase(repo, nil, &mockRouter{intent: router.IntentTrack})

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "track 98765"})

	if !strings.Contains(reply.Text, "#1001") {
		t.Errorf("expected reply to carry matched order id, got %q", reply.Text)
	}
	if strings.Contains(reply.Text, "#1002") {
		t.Errorf("expected non-matching order excluded, got %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "Delivered") {
		t.Errorf("expected fulfilled status rendered as Delivered, got %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "1499.00 INR") {
		t.Errorf("expected total with currency, got %q", reply.Text)
	}
}

func TestRoute_ProductIntent(t *testing.T) {
	repo := &mockCommerceRepo{
		listProductsFunc: func() ([]model.Product, error) {
			return []model.Product{
				{ID: 1, Title: "Silk Scarf Gift Box", Handle: "silk-scarf", Price: 300, Available: true, Tags: []string{"gift"}},
				{ID: 2, Title: "Leather Wallet", Handle: "leather-wallet", Price: 900, Available: true, Tags: []string{"gift"}},
			}, nil
		},
	}
	uc := newTestUseCase(repo, nil, &mockRouter{intent: router.IntentProduct})

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "show me gifts under 500"})

	if len(reply.Products) != 1 {
		t.Fatalf("expected 1 structured product, got %d", len(reply.Products))
	}
	p := reply.Products[0]
	if p.Title != "Silk Scarf Gift Box" {
		t.Errorf("expected the under-budget product, got %q", p.Title)
	}
	if p.Price != "₹300.00" {
		t.Errorf("expected formatted price, got %q", p.Price)
	}
	if p.URL != "https://teststore.myshopify.com/products/silk-scarf" {
		t.Errorf("unexpected product URL %q", p.URL)
	}
	if p.ImageURL != placeholderImageURL {
		t.Errorf("expected placeholder image, got %q", p.ImageURL)
	}
}

func TestRoute_FaqIntent(t *testing.T) {
	uc := newTestUseCase(nil, nil, &mockRouter{intent: router.IntentFaq})

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "what is your shipping policy"})
	if !strings.Contains(reply.Text, "2-5 business days") {
		t.Errorf("expected shipping answer, got %q", reply.Text)
	}
}

func TestRoute_ChatIntent(t *testing.T) {
	llm := &mockCompleter{
		completeFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			if req.System != promptChatSystem {
				t.Error("expected chat system prompt")
			}
			return &llmprovider.Response{Text: "Hi! How can I help you today?"}, nil
		},
	}
	uc := newTestUseCase(nil, llm, &mockRouter{intent: router.IntentChat})

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "hello"})
	if reply.Text != "Hi! How can I help you today?" {
		t.Errorf("unexpected chat reply %q", reply.Text)
	}
}

func TestRoute_HandlerFailureMasked(t *testing.T) {
	repo := &mockCommerceRepo{
		listOrdersFunc: func() ([]model.Order, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	uc := newTestUseCase(repo, nil, &mockRouter{intent: router.IntentTrack})

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "track 98765"})
	if reply.Text != replyFailure {
		t.Errorf("expected failure reply, got %q", reply.Text)
	}
}

func TestRoute_TranslatedTextDrivesDispatch(t *testing.T) {
	var classified string
	rtFn := &recordingRouter{intent: router.IntentFaq, record: func(msg string) { classified = msg }}

	uc := newTestUseCase(nil, nil, nil)
	uc.router = rtFn
	uc.translator = &mockTranslator{
		translateFunc: func(text, targetLang string) string {
			if targetLang != "en" {
				t.Errorf("expected target language en, got %q", targetLang)
			}
			return "what is your return policy"
		},
	}

	reply := uc.Route(context.Background(), assistant.RouteInput{Message: "¿cuál es su política de devolución?"})

	if classified != "what is your return policy" {
		t.Errorf("expected classifier to see translated text, got %q", classified)
	}
	if !strings.Contains(reply.Text, "7 days of delivery") {
		t.Errorf("expected return answer, got %q", reply.Text)
	}
}

type recordingRouter struct {
	intent router.Intent
	record func(msg string)
}

func (r *recordingRouter) Classify(ctx context.Context, message string) (router.Intent, error) {
	r.record(message)
	return r.intent, nil
}

func TestTrackOrder(t *testing.T) {
	t.Run("empty mobile prompts for identifier", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil)

		reply, err := uc.TrackOrder(context.Background(), assistant.TrackInput{Mobile: "  "})
		if err != nil {
			t.Fatalf("TrackOrder() error = %v", err)
		}
		if reply.Text != replyMissingIdentifier {
			t.Errorf("expected identifier prompt, got %q", reply.Text)
		}
	})

	t.Run("backend failure surfaces as error", func(t *testing.T) {
		repo := &mockCommerceRepo{
			listOrdersFunc: func() ([]model.Order, error) {
				return nil, errors.New("backend unavailable")
			},
		}
		uc := newTestUseCase(repo, nil, nil)

		if _, err := uc.TrackOrder(context.Background(), assistant.TrackInput{Mobile: "98765"}); err == nil {
			t.Error("expected error from backend failure")
		}
	})
}
