package admin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"minicart/gateway"
	"minicart/render"
)

func DashboardHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		d, err := c.Dashboard(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func UsersHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		users, err := c.Users(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"users": users})
	}
}

func OrdersHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		orders, err := c.Orders(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"orders": orders})
	}
}

// OrderHandler handles /api/admin/orders/{id} and {id}/status.
func OrderHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))

		if id, ok := strings.CutSuffix(rest, "/status"); ok && r.Method == http.MethodPut {
			orderID, err := strconv.Atoi(id)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Order id is required"})
				return
			}
			var req struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
				return
			}
			if err := c.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]any{"message": "Order status updated", "order_id": orderID, "status": req.Status})
			return
		}

		orderID, err := strconv.Atoi(rest)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Order id is required"})
			return
		}
		ord, err := c.Order(ctx, orderID)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, ord)
	}
}

// ProductsHandler handles GET (list) and POST (create) on /api/admin/products.
func ProductsHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		switch r.Method {
		case http.MethodGet:
			q := r.URL.Query()
			page, _ := strconv.Atoi(q.Get("page"))
			perPage, _ := strconv.Atoi(q.Get("per_page"))
			products, err := c.Products(ctx, page, perPage, q.Get("search"))
			if err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, products)
		case http.MethodPost:
			var in ProductInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
				return
			}
			id, err := c.CreateProduct(ctx, in)
			if err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusCreated, map[string]any{"message": "Product created", "id": id})
		default:
			render.JSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"})
		}
	}
}

// ProductHandler handles PUT and DELETE on /api/admin/products/{id}.
func ProductHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/admin/products/"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Product id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		switch r.Method {
		case http.MethodPut:
			var fields map[string]any
			if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
				return
			}
			if err := c.UpdateProduct(ctx, id, fields); err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]string{"message": "Product updated"})
		case http.MethodDelete:
			if err := c.DeleteProduct(ctx, id); err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
		default:
			render.JSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"})
		}
	}
}

// CategoriesHandler handles GET (list) and POST (create) on
// /api/admin/categories.
func CategoriesHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		switch r.Method {
		case http.MethodGet:
			cats, err := c.Categories(ctx)
			if err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]any{"categories": cats})
		case http.MethodPost:
			var req struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Image       string `json:"image"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
				return
			}
			id, err := c.CreateCategory(ctx, req.Name, req.Description, req.Image)
			if err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusCreated, map[string]any{"message": "Category created", "id": id})
		default:
			render.JSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"})
		}
	}
}

// CategoryHandler handles GET, PUT and DELETE on /api/admin/categories/{id}.
func CategoryHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/admin/categories/"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Category id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		switch r.Method {
		case http.MethodGet:
			cat, err := c.Category(ctx, id)
			if err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, cat)
		case http.MethodPut:
			var fields map[string]any
			if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
				return
			}
			if err := c.UpdateCategory(ctx, id, fields); err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]string{"message": "Category updated"})
		case http.MethodDelete:
			if err := c.DeleteCategory(ctx, id); err != nil {
				render.Error(w, r, err)
				return
			}
			render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
		default:
			render.JSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"})
		}
	}
}
