package usecase

// Log prefixes
const (
	LogPrefixRoute    = "assistant.usecase.Route"
	LogPrefixOrders   = "assistant.usecase.lookupOrders"
	LogPrefixProducts = "assistant.usecase.discoverProducts"
	LogPrefixChat     = "assistant.usecase.chatReply"
)

// Chat prompt. Scopes answers to the store and forbids references to
// unrelated platforms.
const promptChatSystem = `You are a friendly customer assistant for this online store.
Answer only about this store: its products, orders, shipping, returns, and policies.
Never mention, recommend, or compare with other shops, marketplaces, or platforms.
If the customer asks about something unrelated to the store, politely steer them back.
Keep answers short and warm.`

const (
	chatTemperature = 0.7
	chatMaxTokens   = 320
)

// User-facing reply texts.
const (
	replyMissingMessage = "Tell me what you're looking for and I'll help — an order update, a product, or a question about the store."

	replyMissingIdentifier = "Please share the phone number you ordered with (the last few digits are fine), and I'll look it up."

	replyNoOrderFound = "I couldn't find any order for %q. Please check the number and try again."

	replyNoProducts = "No products matched that. Try another keyword, like a category or a budget."

	replyFailure = "Sorry, I couldn't complete that request right now. Please try again in a moment."
)

// resultPageSize is the fixed result cap for product discovery. No
// pagination cursor: the assistant answers in one message.
const resultPageSize = 5

// placeholderImageURL substitutes for products without an image.
const placeholderImageURL = "https://placehold.co/300x300?text=No+Image"

// faqEntry pairs a lowercase keyword with its canned answer.
type faqEntry struct {
	Keyword string
	Answer  string
}

// faqTable is checked in order; first keyword found as a substring of the
// lowercased message wins. Order is part of the contract: "return" must be
// checked before "refund" so a message mentioning both gets the return policy.
var faqTable = []faqEntry{
	{"return", "You can return any item within 7 days of delivery, as long as it's unused and has its tags on. Start a return by replying here with your order number."},
	{"refund", "Refunds go back to your original payment method within 5-7 business days after we receive the item."},
	{"exchange", "Exchanges are free within 7 days of delivery — just tell us the size or colour you'd like instead."},
	{"shipping", "We ship across India in 2-5 business days. Shipping is free on orders above ₹999, otherwise ₹49."},
	{"cancel", "Orders can be cancelled any time before they ship. Reply with your order number and we'll take care of it."},
	{"cod", "Cash on delivery is available on orders up to ₹5,000."},
	{"payment", "We accept UPI, all major cards, netbanking, and cash on delivery."},
	{"contact", "You can reach our support team right here, or email support@ our store domain — we reply within a day."},
}

// faqFallback answers when no keyword matches.
const faqFallback = "Sorry, I didn't quite get that. You can ask me about returns, refunds, exchanges, shipping, cancellations, or payments."

// categoryKeywords is the fixed category set matched against the query and
// then against product tags/titles. First hit in this order wins.
var categoryKeywords = []string{
	"saree", "kurti", "lehenga", "dress", "shirt", "tshirt", "jeans",
	"shoes", "sandal", "watch", "bag", "jewellery", "gift",
}
