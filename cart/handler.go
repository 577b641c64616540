package cart

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"minicart/config"
	"minicart/gateway"
	"minicart/model"
	"minicart/pricing"
	"minicart/render"
)

type cartView struct {
	CartItems []model.CartLine     `json:"cart_items"`
	Totals    model.PriceBreakdown `json:"totals"`
	Display   map[string]string    `json:"display"`
}

func buildView(lines []model.CartLine) cartView {
	rates := pricing.RatesFromConfig(config.GetConfig())
	totals := pricing.Rounded(rates.Breakdown(lines))
	return cartView{
		CartItems: lines,
		Totals:    totals,
		Display: map[string]string{
			"subtotal": pricing.FormatAmount(totals.Subtotal),
			"shipping": pricing.FormatShipping(totals.Shipping),
			"tax":      pricing.FormatAmount(totals.Tax),
			"total":    pricing.FormatAmount(totals.Total),
		},
	}
}

// ListHandler returns the server-confirmed cart with derived totals.
func ListHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		lines, err := rec.List(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, buildView(lines))
	}
}

func AddHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		if err := rec.Add(ctx, req.ProductID, req.Quantity); err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "Added to cart"})
	}
}

// UpdateHandler handles PUT /api/cart/update/{id}.
func UpdateHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := lineIDFromPath(r.URL.Path, "/api/cart/update/")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Cart line id is required"})
			return
		}

		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		lines, err := rec.UpdateQuantity(ctx, id, req.Quantity)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, buildView(lines))
	}
}

// RemoveHandler handles DELETE /api/cart/remove/{id}.
func RemoveHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := lineIDFromPath(r.URL.Path, "/api/cart/remove/")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Cart line id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		lines, err := rec.Remove(ctx, id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, buildView(lines))
	}
}

func lineIDFromPath(path, prefix string) (int, error) {
	raw := strings.TrimPrefix(path, prefix)
	return strconv.Atoi(raw)
}
