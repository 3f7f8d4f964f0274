package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"storefront-assistant/internal/assistant"
	"storefront-assistant/internal/model"
)

// searchQuery holds the heuristics extracted from free text. The checks are
// independent: several can fire on one message.
type searchQuery struct {
	best     bool    // "best"/"top"/"popular"/"trending"
	sortAsc  bool    // "low to high"
	sortDesc bool    // "high to low"
	discount bool    // "discount"/"offer"
	gift     bool    // affects reply framing only, not filtering
	random   bool    // "random"/"surprise"
	maxPrice float64 // first integer literal; 0 = no ceiling
	category string  // first category keyword found; "" = none
}

var intRe = regexp.MustCompile(`\d+`)

// extractQuery runs the keyword/number heuristics over the message. This is
// best-effort parsing, not a grammar.
func extractQuery(message string) searchQuery {
	low := strings.ToLower(message)

	q := searchQuery{
		best:     containsAny(low, "best", "top", "popular", "trending"),
		sortAsc:  strings.Contains(low, "low to high"),
		sortDesc: strings.Contains(low, "high to low"),
		discount: containsAny(low, "discount", "offer"),
		gift:     strings.Contains(low, "gift"),
		random:   containsAny(low, "random", "surprise"),
	}

	if m := intRe.FindString(low); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			q.maxPrice = v
		}
	}

	for _, kw := range categoryKeywords {
		if strings.Contains(low, kw) {
			q.category = kw
			break
		}
	}

	return q
}

// discoverProducts runs the fetch → filter → sort → limit → random pipeline
// and renders a text summary plus the structured result list.
func (uc *implUseCase) discoverProducts(ctx context.Context, message string) (assistant.Reply, error) {
	catalog, err := uc.repo.ListProducts(ctx)
	if err != nil {
		// A missing catalog fails the request; an empty result after
		// filtering does not.
		return assistant.Reply{}, fmt.Errorf("%s: %w", LogPrefixProducts, err)
	}

	q := extractQuery(message)
	results := applyFilters(catalog, q)
	sortResults(results, q)

	if len(results) > resultPageSize {
		results = results[:resultPageSize]
	}

	// "Surprise me" picks one among the already-relevant top results, not
	// the full filtered set.
	if q.random && len(results) > 0 {
		results = []model.Product{results[uc.randIntN(len(results))]}
	}

	if len(results) == 0 {
		uc.l.Infof(ctx, "%s: no products matched %q", LogPrefixProducts, message)
		return assistant.Reply{Text: replyNoProducts}, nil
	}

	return uc.renderProducts(results, q), nil
}

func applyFilters(catalog []model.Product, q searchQuery) []model.Product {
	var out []model.Product
	for _, p := range catalog {
		if q.maxPrice > 0 && p.Price > q.maxPrice {
			continue
		}
		if q.category != "" && !matchesCategory(p, q.category) {
			continue
		}
		if q.discount && !hasDiscountMarker(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p model.Product, category string) bool {
	return p.HasTag(category) || strings.Contains(strings.ToLower(p.Title), category)
}

func hasDiscountMarker(p model.Product) bool {
	return p.HasTag("discount") || p.HasTag("offer") || p.HasTag("sale")
}

// sortResults orders the candidate set: best-match mode wins over price
// direction; with neither, backend order is preserved.
func sortResults(products []model.Product, q searchQuery) {
	switch {
	case q.best:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].UpdatedAt.After(products[j].UpdatedAt)
		})
	case q.sortAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case q.sortDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}

func (uc *implUseCase) renderProducts(products []model.Product, q searchQuery) assistant.Reply {
	header := "Here's what I found for you:"
	switch {
	case q.random:
		header = "Surprise! How about this:"
	case q.gift:
		header = "Here are some gift ideas:"
	case q.best:
		header = "Our current favourites:"
	}

	var b strings.Builder
	b.WriteString(header)

	structured := make([]assistant.ProductResult, 0, len(products))
	for _, p := range products {
		price := formatPrice(p.Price)
		url := uc.productURL(p)

		b.WriteString(fmt.Sprintf("\n• %s — %s (%s)", p.Title, price, url))
		if !p.Available {
			b.WriteString(" [Out of stock]")
		}

		imageURL := p.ImageURL
		if imageURL == "" {
			imageURL = placeholderImageURL
		}
		structured = append(structured, assistant.ProductResult{
			Title:     p.Title,
			Price:     price,
			URL:       url,
			ImageURL:  imageURL,
			Available: p.Available,
		})
	}

	return assistant.Reply{Text: b.String(), Products: structured}
}

func (uc *implUseCase) productURL(p model.Product) string {
	return fmt.Sprintf("https://%s/products/%s", uc.storeURL, p.Handle)
}

func formatPrice(price float64) string {
	return "₹" + strconv.FormatFloat(price, 'f', 2, 64)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
