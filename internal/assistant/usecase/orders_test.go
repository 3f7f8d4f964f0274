package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront-assistant/internal/model"
)

func TestExtractIdentifier(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"track 98765", "98765"},
		{"where is my order 1001234", "1001234"},
		{"my number is 9898-765432", "9898"},
		{"status please", ""},
		{"order 123", ""}, // too short to be an identifier
	}

	for _, tc := range cases {
		if got := extractIdentifier(tc.message); got != tc.want {
			t.Errorf("extractIdentifier(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestLookupOrders(t *testing.T) {
	orders := []model.Order{
		{ID: "#1001", CustomerName: "Asha Mehta", Phone: "9898765432", FulfillmentStatus: "fulfilled", TotalPrice: "1499.00", Currency: "INR"},
		{ID: "#1002", CustomerName: "Ravi Kumar", ShippingPhone: "9812349876", FulfillmentStatus: "pending", TotalPrice: "799.00", Currency: "INR"},
		{ID: "#1003", CustomerName: "Meena Iyer", Note: "alt contact 9898111222", FulfillmentStatus: "partial", TotalPrice: "2100.00", Currency: "INR"},
	}
	repo := &mockCommerceRepo{
		listOrdersFunc: func() ([]model.Order, error) { return orders, nil },
	}
	uc := newTestUseCase(repo, nil, nil)

	t.Run("matches phone fragment across contact fields", func(t *testing.T) {
		reply, err := uc.lookupOrders(context.Background(), "9898")
		if err != nil {
			t.Fatalf("lookupOrders() error = %v", err)
		}

		// 9898 hits the phone of #1001 and the note of #1003.
		if !strings.Contains(reply.Text, "#1001") || !strings.Contains(reply.Text, "#1003") {
			t.Errorf("expected both matching orders, got %q", reply.Text)
		}
		if strings.Contains(reply.Text, "#1002") {
			t.Errorf("expected #1002 excluded, got %q", reply.Text)
		}
	})

	t.Run("matches shipping phone", func(t *testing.T) {
		reply, err := uc.lookupOrders(context.Background(), "9812349876")
		if err != nil {
			t.Fatalf("lookupOrders() error = %v", err)
		}
		if !strings.Contains(reply.Text, "#1002") {
			t.Errorf("expected shipping phone match, got %q", reply.Text)
		}
	})

	t.Run("no match reports the fragment", func(t *testing.T) {
		reply, err := uc.lookupOrders(context.Background(), "55555")
		if err != nil {
			t.Fatalf("lookupOrders() error = %v", err)
		}
		if !strings.Contains(reply.Text, `"55555"`) {
			t.Errorf("expected fragment echoed in not-found reply, got %q", reply.Text)
		}
	})

	t.Run("missing fragment skips the backend call", func(t *testing.T) {
		called := false
		uc := newTestUseCase(&mockCommerceRepo{
			listOrdersFunc: func() ([]model.Order, error) {
				called = true
				return nil, nil
			},
		}, nil, nil)

		reply, err := uc.lookupOrders(context.Background(), "")
		if err != nil {
			t.Fatalf("lookupOrders() error = %v", err)
		}
		if reply.Text != replyMissingIdentifier {
			t.Errorf("expected identifier prompt, got %q", reply.Text)
		}
		if called {
			t.Error("expected no backend call on missing input")
		}
	})
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		fulfillment string
		want        string
	}{
		{"fulfilled", "Delivered"},
		{"partial", "Partially Shipped"},
		{"restocked", "Returned"},
		{"pending", "Pending"},
		{"", "Processing"},
		{"something-new", "Processing"},
		{"  Fulfilled ", "Delivered"},
	}

	for _, tc := range cases {
		if got := statusLabel(tc.fulfillment); got != tc.want {
			t.Errorf("statusLabel(%q) = %q, want %q", tc.fulfillment, got, tc.want)
		}
	}
}

func TestComposeOrderBlock(t *testing.T) {
	placed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := model.Order{
		ID:                "#1001",
		CustomerName:      "Asha Mehta",
		FulfillmentStatus: "partial",
		TotalPrice:        "1499.00",
		Currency:          "INR",
		CreatedAt:         placed,
		TrackingURL:       "https://track.example/abc",
	}

	block := composeOrderBlock(o)

	for _, want := range []string{
		"Order #1001",
		"Customer: Asha Mehta",
		"Status: Partially Shipped",
		"Total: 1499.00 INR",
		"Estimated delivery: Mar 14, 2026",
		"Tracking: https://track.example/abc",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("expected block to contain %q, got:\n%s", want, block)
		}
	}

	t.Run("missing dates and tracking degrade gracefully", func(t *testing.T) {
		block := composeOrderBlock(model.Order{ID: "#1002", CustomerName: "N/A"})
		if !strings.Contains(block, "Estimated delivery: N/A") {
			t.Errorf("expected N/A estimate, got:\n%s", block)
		}
		if !strings.Contains(block, "Tracking: not available yet") {
			t.Errorf("expected tracking fallback, got:\n%s", block)
		}
	})
}
