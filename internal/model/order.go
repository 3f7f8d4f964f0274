package model

import (
	"strings"
	"time"
)

// Order is a read-only snapshot of a backend order. Fields used only for
// display default to safe placeholders during mapping so a partial backend
// record never crashes a request.
type Order struct {
	ID                string    // display id, e.g. "#1001"
	CustomerName      string    // "N/A" when absent
	Phone             string    // order contact phone
	ShippingPhone     string    // shipping address phone
	Note              string    // free-text note, may carry customer identifiers
	FulfillmentStatus string    // backend vocabulary; empty means not fulfilled yet
	TotalPrice        string    // display string as returned by the backend
	Currency          string
	CreatedAt         time.Time
	TrackingURL       string // empty when no fulfillment carries one
}

// MatchesFragment reports whether the identifier fragment occurs as a
// substring of any contact field. Substring (not exact) match is intentional:
// customers often give only the last digits of a phone number.
func (o Order) MatchesFragment(fragment string) bool {
	if fragment == "" {
		return false
	}
	return strings.Contains(o.Phone, fragment) ||
		strings.Contains(o.ShippingPhone, fragment) ||
		strings.Contains(o.Note, fragment)
}
