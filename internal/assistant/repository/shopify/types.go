package shopify

// Wire types for the Admin REST API. Only the fields the assistant reads.

type ordersResponse struct {
	Orders []orderWire `json:"orders"`
}

type orderWire struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"` // display id, e.g. "#1001"
	Phone             string       `json:"phone"`
	Note              string       `json:"note"`
	FulfillmentStatus string       `json:"fulfillment_status"`
	CurrentTotalPrice string       `json:"current_total_price"`
	Currency          string       `json:"currency"`
	CreatedAt         string       `json:"created_at"`
	Customer          *customer    `json:"customer"`
	ShippingAddress   *address     `json:"shipping_address"`
	Fulfillments      []fulfillment `json:"fulfillments"`
}

type customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type address struct {
	Phone string `json:"phone"`
}

type fulfillment struct {
	TrackingURL string `json:"tracking_url"`
}

type productsResponse struct {
	Products []productWire `json:"products"`
}

type productWire struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Handle    string   `json:"handle"`
	Status    string   `json:"status"` // active, draft, archived
	Tags      string   `json:"tags"`   // comma separated
	UpdatedAt string   `json:"updated_at"`
	Variants  []variant `json:"variants"`
	Image     *image   `json:"image"`
}

type variant struct {
	Price               string `json:"price"`
	InventoryManagement string `json:"inventory_management"`
	InventoryQuantity   int    `json:"inventory_quantity"`
}

type image struct {
	Src string `json:"src"`
}
