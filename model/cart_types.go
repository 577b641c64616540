package model

// ProductRef is the abbreviated product embedded in cart lines and order
// items. The cart payload names the image field image_url, the order payload
// names it image; both are carried so either shape decodes.
type ProductRef struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// CartLine is one server-side cart row. The server owns the line; the client
// only ever holds a copy refreshed from GET /cart. Quantity is always >= 1 on
// a line that exists; removal deletes the line instead of zeroing it.
type CartLine struct {
	ID          int        `json:"id"`
	ProductID   int        `json:"product_id"`
	Quantity    int        `json:"quantity"`
	PriceAtTime float64    `json:"price_at_time"`
	Product     ProductRef `json:"product"`
}

// Cart is the GET /cart response envelope.
type Cart struct {
	CartItems []CartLine `json:"cart_items"`
}

// PriceBreakdown is derived from the current cart lines on every read and
// never stored. Total is exactly Subtotal + Shipping + Tax.
type PriceBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
