package order

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"minicart/gateway"
	"minicart/render"
)

// PlaceHandler handles POST /api/orders/place. The checkout form defaults the
// billing address to the shipping address when left blank, matching the
// "same as shipping" checkbox.
func PlaceHandler(placer *Placer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ShippingAddress string `json:"shipping_address"`
			BillingAddress  string `json:"billing_address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.BillingAddress) == "" {
			req.BillingAddress = req.ShippingAddress
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		ref, err := placer.Place(ctx, req.ShippingAddress, req.BillingAddress)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusCreated, ref)
	}
}

func HistoryHandler(placer *Placer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		orders, err := placer.History(ctx)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"orders": orders})
	}
}

// DetailHandler handles GET /api/orders/{id}.
func DetailHandler(placer *Placer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/api/orders/")
		id, err := strconv.Atoi(raw)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Order id is required"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		ord, err := placer.Detail(ctx, id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, ord)
	}
}
