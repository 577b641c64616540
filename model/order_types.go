package model

// OrderRef is the POST /orders/place response. After placement the client
// holds only this reference; the order itself lives on the server.
type OrderRef struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id"`
}

type OrderItem struct {
	ID        int        `json:"id"`
	ProductID int        `json:"product_id"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Product   ProductRef `json:"product"`
}

// Order is the shape of GET /orders entries and GET /orders/{id}. Items is
// only populated on the detail endpoint. The admin order endpoints add the
// user fields.
type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"user_id,omitempty"`
	UserName        string      `json:"user_name,omitempty"`
	UserEmail       string      `json:"user_email,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"created_at"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	Items           []OrderItem `json:"items,omitempty"`
}
