package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"minicart/gateway"
	"minicart/model"
)

// Client wraps the /admin endpoints. Every call needs an admin session; the
// backend answers 403 for a signed-in non-admin, which surfaces as
// gateway.ErrForbidden.
type Client struct {
	gw *gateway.Gateway
}

func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var d model.Dashboard
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/admin/dashboard",
		Out:    &d,
	})
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("failed to fetch dashboard: %w", err)
	}
	return d, nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out struct {
		Users []model.User `json:"users"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/admin/users",
		Out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return out.Users, nil
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var out struct {
		Orders []model.Order `json:"orders"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/admin/orders",
		Out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return out.Orders, nil
}

func (c *Client) Order(ctx context.Context, orderID int) (model.Order, error) {
	var ord model.Order
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/admin/orders/%d", orderID),
		Out:    &ord,
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}
	return ord, nil
}

// UpdateOrderStatus moves an order along pending → confirmed → shipped →
// delivered. The backend validates the status value.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	if status == "" {
		return gateway.ValidationError("status is required")
	}
	return c.gw.Do(ctx, gateway.Call{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/orders/%d/status", orderID),
		Body:   map[string]string{"status": status},
	})
}

func (c *Client) Products(ctx context.Context, page, perPage int, search string) (model.ProductPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	if search != "" {
		q.Set("search", search)
	}

	var out model.ProductPage
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/admin/products",
		Query:  q,
		Out:    &out,
	})
	if err != nil {
		return model.ProductPage{}, fmt.Errorf("failed to fetch admin products: %w", err)
	}
	return out, nil
}

// ProductInput carries the fields the backend accepts for product CRUD.
type ProductInput struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (int, error) {
	if in.Name == "" || in.Title == "" || in.CategoryID == 0 {
		return 0, gateway.ValidationError("name, title, price and category_id are required")
	}

	var out struct {
		ID int `json:"id"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodPost,
		Path:   "/admin/products",
		Body:   in,
		Out:    &out,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return out.ID, nil
}

// UpdateProduct sends a partial update; only the keys present in fields are
// changed server-side.
func (c *Client) UpdateProduct(ctx context.Context, productID int, fields map[string]any) error {
	return c.gw.Do(ctx, gateway.Call{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/products/%d", productID),
		Body:   fields,
	})
}

func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	return c.gw.Do(ctx, gateway.Call{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/products/%d", productID),
	})
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out struct {
		Categories []model.Category `json:"categories"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/admin/categories",
		Out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin categories: %w", err)
	}
	return out.Categories, nil
}

func (c *Client) Category(ctx context.Context, categoryID int) (model.Category, error) {
	var cat model.Category
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/admin/categories/%d", categoryID),
		Out:    &cat,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to fetch category %d: %w", categoryID, err)
	}
	return cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, name, description, image string) (int, error) {
	if name == "" {
		return 0, gateway.ValidationError("name is required")
	}

	var out struct {
		ID int `json:"id"`
	}
	err := c.gw.Do(ctx, gateway.Call{
		Method: http.MethodPost,
		Path:   "/admin/categories",
		Body:   map[string]string{"name": name, "description": description, "image": image},
		Out:    &out,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	return out.ID, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID int, fields map[string]any) error {
	return c.gw.Do(ctx, gateway.Call{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/categories/%d", categoryID),
		Body:   fields,
	})
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID int) error {
	return c.gw.Do(ctx, gateway.Call{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/categories/%d", categoryID),
	})
}
