package router

import "strings"

// Intent is the closed classification label driving dispatch.
type Intent string

const (
	IntentTrack   Intent = "track"
	IntentProduct Intent = "product"
	IntentFaq     Intent = "faq"
	IntentChat    Intent = "chat"
)

// ParseIntent coerces untrusted free-text classifier output into the closed
// Intent set. Anything that does not exactly match a known label after
// trim+lowercase becomes IntentChat. This is the single point where model
// output enters the enum; raw strings never travel further into dispatch.
func ParseIntent(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentTrack:
		return IntentTrack
	case IntentProduct:
		return IntentProduct
	case IntentFaq:
		return IntentFaq
	case IntentChat:
		return IntentChat
	default:
		return IntentChat
	}
}
