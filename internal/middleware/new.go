package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"storefront-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	perMin   int
}

// limiterCacheSize bounds how many distinct clients are tracked at once.
const limiterCacheSize = 4096

// New creates the middleware set. ratePerMin caps requests per client per
// minute; idle clients age out of the limiter cache.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, 10*time.Minute),
		perMin:   ratePerMin,
	}
}
