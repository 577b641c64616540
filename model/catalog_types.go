package model

// Product is the public catalog shape returned by GET /products and
// GET /products/{id}. stock_quantity and rating are derived server-side.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	CategoryID    int     `json:"category_id,omitempty"`
	CategoryName  string  `json:"category_name,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	StockQuantity int     `json:"stock_quantity,omitempty"`
}

// ProductPage is one page of the paginated product listing.
type ProductPage struct {
	Products    []Product `json:"products"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
