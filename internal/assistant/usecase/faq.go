package usecase

import (
	"strings"

	"storefront-assistant/internal/assistant"
)

// answerFaq is the deterministic keyword lookup. No external calls, never
// fails. First keyword found in the lowercased message wins, in table order.
func (uc *implUseCase) answerFaq(message string) assistant.Reply {
	low := strings.ToLower(message)
	for _, entry := range faqTable {
		if strings.Contains(low, entry.Keyword) {
			return assistant.Reply{Text: entry.Answer}
		}
	}
	return assistant.Reply{Text: faqFallback}
}
