package order

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"minicart/gateway"
	"minicart/model"
)

// Placer submits cash-on-delivery orders. Placement is a single backend call:
// on failure no order exists, on success the client holds only the returned
// reference. Whether the backend cleared the cart is its own business; the
// caller re-fetches the cart instead of assuming it is empty.
type Placer struct {
	gw *gateway.Gateway
}

func NewPlacer(gw *gateway.Gateway) *Placer {
	return &Placer{gw: gw}
}

// Place submits the order. Both addresses must be non-empty; the cart itself
// is validated server-side.
func (p *Placer) Place(ctx context.Context, shippingAddress, billingAddress string) (model.OrderRef, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return model.OrderRef{}, gateway.ValidationError("shipping address is required")
	}
	if strings.TrimSpace(billingAddress) == "" {
		return model.OrderRef{}, gateway.ValidationError("billing address is required")
	}

	var ref model.OrderRef
	err := p.gw.Do(ctx, gateway.Call{
		Method: http.MethodPost,
		Path:   "/orders/place",
		Body: map[string]string{
			"shipping_address": shippingAddress,
			"billing_address":  billingAddress,
		},
		Out: &ref,
	})
	if err != nil {
		return model.OrderRef{}, fmt.Errorf("failed to place order: %w", err)
	}
	return ref, nil
}

// History lists the user's past orders, newest first.
func (p *Placer) History(ctx context.Context) ([]model.Order, error) {
	var out struct {
		Orders []model.Order `json:"orders"`
	}
	err := p.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/orders",
		Out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return out.Orders, nil
}

// Detail fetches one order including its items.
func (p *Placer) Detail(ctx context.Context, orderID int) (model.Order, error) {
	var ord model.Order
	err := p.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/orders/%d", orderID),
		Out:    &ord,
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}
	return ord, nil
}
