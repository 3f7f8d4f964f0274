package http

import "storefront-assistant/internal/assistant"

type replyResp struct {
	Reply    string        `json:"reply"`
	Products []productItem `json:"products,omitempty"`
}

type productItem struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	URL       string `json:"url"`
	ImageURL  string `json:"image_url"`
	Available bool   `json:"available"`
}

func newReplyResp(out assistant.Reply) replyResp {
	resp := replyResp{Reply: out.Text}
	for _, p := range out.Products {
		resp.Products = append(resp.Products, productItem{
			Title:     p.Title,
			Price:     p.Price,
			URL:       p.URL,
			ImageURL:  p.ImageURL,
			Available: p.Available,
		})
	}
	return resp
}
