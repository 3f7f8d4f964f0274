package shopify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-assistant/internal/model"
)

// ListOrders fetches all orders regardless of fulfillment state
// (status=any: customers ask about every state, so nothing is filtered
// server-side) and exhausts pagination before returning.
func (r *Repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	url := fmt.Sprintf("%s/orders.json?status=any&limit=250", r.client.baseURL)

	var orders []model.Order
	for url != "" {
		var page ordersResponse
		link, err := r.client.get(ctx, url, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		for _, w := range page.Orders {
			orders = append(orders, mapOrder(w))
		}
		url = nextPageURL(link)
	}

	r.l.Debugf(ctx, "shopify: fetched %d orders", len(orders))
	return orders, nil
}

// mapOrder converts a wire order into the domain snapshot. Display-only
// fields default to safe placeholders instead of failing the request.
func mapOrder(w orderWire) model.Order {
	o := model.Order{
		ID:                w.Name,
		Phone:             w.Phone,
		Note:              w.Note,
		FulfillmentStatus: w.FulfillmentStatus,
		TotalPrice:        w.CurrentTotalPrice,
		Currency:          w.Currency,
	}
	if o.ID == "" {
		o.ID = fmt.Sprintf("#%d", w.ID)
	}
	if o.TotalPrice == "" {
		o.TotalPrice = "N/A"
	}

	if w.Customer != nil {
		o.CustomerName = strings.TrimSpace(w.Customer.FirstName + " " + w.Customer.LastName)
		if o.Phone == "" {
			o.Phone = w.Customer.Phone
		}
	}
	if o.CustomerName == "" {
		o.CustomerName = "N/A"
	}

	if w.ShippingAddress != nil {
		o.ShippingPhone = w.ShippingAddress.Phone
	}

	if t, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		o.CreatedAt = t
	}

	for _, f := range w.Fulfillments {
		if f.TrackingURL != "" {
			o.TrackingURL = f.TrackingURL
			break
		}
	}

	return o
}
