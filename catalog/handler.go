package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"minicart/gateway"
	"minicart/render"
)

// ProductsHandler handles GET /api/products with the same query parameters
// the backend takes.
func ProductsHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := ListOptions{
			Page:       atoiOrZero(q.Get("page")),
			PerPage:    atoiOrZero(q.Get("per_page")),
			CategoryID: atoiOrZero(q.Get("category_id")),
			Search:     q.Get("search"),
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		page, err := c.Products(ctx, opts)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, page)
	}
}

// ProductHandler handles GET /api/products/{id}.
func ProductHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/products/"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Product id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		p, err := c.Product(ctx, id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func CategoriesHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		cats, err := c.Categories(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"categories": cats})
	}
}

// CategoryHandler handles GET /api/categories/{id}.
func CategoryHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/categories/"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Category id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		cat, err := c.Category(ctx, id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, cat)
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
