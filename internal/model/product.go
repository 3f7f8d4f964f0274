package model

import (
	"strings"
	"time"
)

// Product is a read-only catalog snapshot entry. No caching across requests:
// freshness over performance.
type Product struct {
	ID        int64
	Title     string
	Handle    string
	Price     float64 // first variant price; 0 when unparsable
	ImageURL  string  // empty when the source image is absent
	Available bool
	UpdatedAt time.Time
	Tags      []string // lowercase
}

// HasTag reports whether any tag contains the given lowercase keyword.
func (p Product) HasTag(keyword string) bool {
	for _, t := range p.Tags {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}
