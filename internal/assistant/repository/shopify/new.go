package shopify

import (
	"storefront-assistant/internal/assistant/repository"
	pkgLog "storefront-assistant/pkg/log"
)

// Repository adapts the Shopify Admin REST API to the commerce port.
type Repository struct {
	client *Client
	l      pkgLog.Logger
}

var _ repository.CommerceRepository = (*Repository)(nil)

// New creates a new Shopify-backed commerce repository.
func New(client *Client, l pkgLog.Logger) *Repository {
	return &Repository{
		client: client,
		l:      l,
	}
}
