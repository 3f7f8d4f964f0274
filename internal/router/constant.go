package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier prompt. The system instruction pins the answer to exactly one
// label; everything else is coerced by ParseIntent.
const (
	PromptClassifySystem = `You are an intent classifier for an online store's customer assistant.
Classify the customer message into exactly one of these labels:

track   - order status, delivery, tracking, "where is my order"
product - product search, recommendations, browsing, prices
faq     - store policies: returns, refunds, shipping charges, payments
chat    - greetings, small talk, anything else

Answer with ONLY the label, lowercase, no punctuation, no explanation.`

	// ClassifyTemperature keeps label output deterministic.
	ClassifyTemperature = 0.1

	// ClassifyMaxTokens caps the answer; one label never needs more.
	ClassifyMaxTokens = 8
)
