package assistant

// RouteInput carries one inbound free-text message. Stateless: there is no
// conversation history and no session identity.
type RouteInput struct {
	Message string
}

// TrackInput carries a direct (non-smart) order lookup request.
type TrackInput struct {
	Mobile string
}

// Reply is the single object returned to the caller: one user-facing text
// plus optional structured data. Invariant: always produced, even on total
// subsystem failure, never a raw error with no text.
type Reply struct {
	Text     string
	Products []ProductResult
}

// ProductResult is one structured product entry, display-ready.
type ProductResult struct {
	Title     string
	Price     string // formatted price string
	URL       string
	ImageURL  string // placeholder substituted when the source image is absent
	Available bool
}
