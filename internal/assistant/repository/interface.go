package repository

import (
	"context"

	"storefront-assistant/internal/model"
)

// CommerceRepository is the port to the commerce backend. One call returns
// the full scope: if the real backend paginates, the adapter exhausts all
// pages before returning.
type CommerceRepository interface {
	// ListOrders returns all orders regardless of fulfillment state.
	ListOrders(ctx context.Context) ([]model.Order, error)

	// ListProducts returns the full catalog snapshot.
	ListProducts(ctx context.Context) ([]model.Product, error)
}
