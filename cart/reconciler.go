package cart

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"minicart/gateway"
	"minicart/model"
	"minicart/session"
)

// Reconciler mutates the server-side cart and keeps a local read-only copy of
// it. The copy is only ever replaced wholesale by what the server returned
// from GET /cart; mutations never patch it directly, so it can be stale but
// never diverge. On any failed mutation the previous copy stays visible.
type Reconciler struct {
	gw       *gateway.Gateway
	sessions session.Store

	mu    sync.RWMutex
	items []model.CartLine
}

func NewReconciler(gw *gateway.Gateway, sessions session.Store) *Reconciler {
	return &Reconciler{gw: gw, sessions: sessions}
}

// List fetches the authoritative cart and replaces the local copy.
func (r *Reconciler) List(ctx context.Context) ([]model.CartLine, error) {
	var cart model.Cart
	err := r.gw.Do(ctx, gateway.Call{
		Method: http.MethodGet,
		Path:   "/cart",
		Out:    &cart,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	lines := cart.CartItems
	if lines == nil {
		lines = []model.CartLine{}
	}

	r.mu.Lock()
	r.items = lines
	r.mu.Unlock()

	return r.Items(), nil
}

// Items returns the last server-confirmed snapshot.
func (r *Reconciler) Items() []model.CartLine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CartLine, len(r.items))
	copy(out, r.items)
	return out
}

// Add puts quantity units of a product into the server cart. It needs a
// session: with none stored it fails before any network call so the caller
// can send the user to the login page. The local copy is not touched; the
// next List picks the line up.
func (r *Reconciler) Add(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return gateway.ValidationError("quantity must be at least 1")
	}
	if _, ok := r.sessions.Get(); !ok {
		return gateway.ErrAuthRequired
	}

	return r.gw.Do(ctx, gateway.Call{
		Method: http.MethodPost,
		Path:   "/cart/add",
		Body:   map[string]any{"product_id": productID, "quantity": quantity},
	})
}

// UpdateQuantity sets a line's quantity and re-fetches the cart so the
// returned lines are server-confirmed. Quantities below 1 are rejected
// locally: removal goes through Remove, never through a zero quantity.
func (r *Reconciler) UpdateQuantity(ctx context.Context, lineID, quantity int) ([]model.CartLine, error) {
	if quantity < 1 {
		return nil, gateway.ValidationError("quantity must be at least 1; use remove to delete a line")
	}

	err := r.gw.Do(ctx, gateway.Call{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/cart/update/%d", lineID),
		Body:   map[string]any{"quantity": quantity},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update cart line %d: %w", lineID, err)
	}

	return r.List(ctx)
}

// Remove deletes a line server-side, then re-fetches the cart.
func (r *Reconciler) Remove(ctx context.Context, lineID int) ([]model.CartLine, error) {
	err := r.gw.Do(ctx, gateway.Call{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/cart/remove/%d", lineID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart line %d: %w", lineID, err)
	}

	return r.List(ctx)
}
