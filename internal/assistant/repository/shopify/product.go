package shopify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront-assistant/internal/model"
)

// ListProducts fetches the full catalog snapshot, exhausting pagination.
func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	url := fmt.Sprintf("%s/products.json?limit=250", r.client.baseURL)

	var products []model.Product
	for url != "" {
		var page productsResponse
		link, err := r.client.get(ctx, url, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		for _, w := range page.Products {
			products = append(products, mapProduct(w))
		}
		url = nextPageURL(link)
	}

	r.l.Debugf(ctx, "shopify: fetched %d products", len(products))
	return products, nil
}

// mapProduct converts a wire product into the domain snapshot.
func mapProduct(w productWire) model.Product {
	p := model.Product{
		ID:     w.ID,
		Title:  w.Title,
		Handle: w.Handle,
	}

	if len(w.Variants) > 0 {
		first := w.Variants[0]
		if price, err := strconv.ParseFloat(first.Price, 64); err == nil {
			p.Price = price
		}
		p.Available = w.Status == "active" &&
			(first.InventoryManagement == "" || first.InventoryQuantity > 0)
	} else {
		p.Available = w.Status == "active"
	}

	if w.Image != nil {
		p.ImageURL = w.Image.Src
	}

	if t, err := time.Parse(time.RFC3339, w.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}

	for _, tag := range strings.Split(w.Tags, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			p.Tags = append(p.Tags, tag)
		}
	}

	return p
}
