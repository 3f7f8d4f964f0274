package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/internal/model"
)

var identifierRe = regexp.MustCompile(`\d{4,}`)

// extractIdentifier pulls the first number-like token out of a message
// ("track 98765" → "98765"). Empty when the message carries none.
func extractIdentifier(message string) string {
	return identifierRe.FindString(message)
}

// lookupOrders resolves every order whose contact fields contain the
// identifier fragment and composes one block per match.
func (uc *implUseCase) lookupOrders(ctx context.Context, fragment string) (assistant.Reply, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		// No backend call on missing input.
		return assistant.Reply{Text: replyMissingIdentifier}, nil
	}

	orders, err := uc.repo.ListOrders(ctx)
	if err != nil {
		return assistant.Reply{}, fmt.Errorf("%s: %w", LogPrefixOrders, err)
	}

	// All matches are returned, not just the first: a short fragment may
	// legitimately hit several orders.
	var blocks []string
	for _, o := range orders {
		if o.MatchesFragment(fragment) {
			blocks = append(blocks, composeOrderBlock(o))
		}
	}

	if len(blocks) == 0 {
		uc.l.Infof(ctx, "%s: no order matched fragment %q", LogPrefixOrders, fragment)
		return assistant.Reply{Text: fmt.Sprintf(replyNoOrderFound, fragment)}, nil
	}

	uc.l.Infof(ctx, "%s: %d order(s) matched fragment %q", LogPrefixOrders, len(blocks), fragment)
	return assistant.Reply{Text: strings.Join(blocks, "\n\n")}, nil
}

func composeOrderBlock(o model.Order) string {
	tracking := o.TrackingURL
	if tracking == "" {
		tracking = "not available yet"
	}

	return fmt.Sprintf("🧾 Order %s\nCustomer: %s\nStatus: %s\nTotal: %s %s\nEstimated delivery: %s\nTracking: %s",
		o.ID,
		o.CustomerName,
		statusLabel(o.FulfillmentStatus),
		o.TotalPrice,
		o.Currency,
		deliveryEstimate(o),
		tracking,
	)
}

// statusLabel maps the backend fulfillment vocabulary to the user-facing
// status set. Unknown or absent states read as Processing.
func statusLabel(fulfillmentStatus string) string {
	switch strings.ToLower(strings.TrimSpace(fulfillmentStatus)) {
	case "fulfilled":
		return "Delivered"
	case "partial":
		return "Partially Shipped"
	case "restocked":
		return "Returned"
	case "pending":
		return "Pending"
	default:
		return "Processing"
	}
}

// deliveryEstimate is placed-date + 4 days. A fixed-offset heuristic, not a
// carrier estimate.
func deliveryEstimate(o model.Order) string {
	if o.CreatedAt.IsZero() {
		return "N/A"
	}
	return o.CreatedAt.AddDate(0, 0, 4).Format("Jan 2, 2006")
}
