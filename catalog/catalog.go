package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"minicart/gateway"
	"minicart/model"
)

// Client wraps the public catalog endpoints. No session is needed for any of
// them; the gateway still attaches one when present, which the backend
// ignores here.
type Client struct {
	gw *gateway.Gateway
}

func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// ListOptions filter and page the product listing. Zero values are omitted
// so the backend applies its own defaults (page 1, 10 per page).
type ListOptions struct {
	Page       int
	PerPage    int
	CategoryID int
	Search     string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.CategoryID > 0 {
		q.Set("category_id", strconv.Itoa(o.CategoryID))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

func (c *Client) Products(ctx context.Context, opts ListOptions) (model.ProductPage, error) {
	var page model.ProductPage
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/products",
		Query:  opts.query(),
		Out:    &page,
	})
	if err != nil {
		return model.ProductPage{}, fmt.Errorf("failed to fetch products: %w", err)
	}
	return page, nil
}

func (c *Client) Product(ctx context.Context, productID int) (model.Product, error) {
	var p model.Product
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/products/%d", productID),
		Out:    &p,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to fetch product %d: %w", productID, err)
	}
	return p, nil
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out struct {
		Categories []model.Category `json:"categories"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/categories",
		Out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return out.Categories, nil
}

func (c *Client) Category(ctx context.Context, categoryID int) (model.Category, error) {
	var cat model.Category
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/categories/%d", categoryID),
		Out:    &cat,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to fetch category %d: %w", categoryID, err)
	}
	return cat, nil
}
