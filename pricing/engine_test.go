package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicart/config"
	"minicart/model"
)

func defaultRates() Rates {
	return RatesFromConfig(config.Defaults())
}

func line(price float64, qty int) model.CartLine {
	return model.CartLine{Quantity: qty, Product: model.ProductRef{Price: price}}
}

// TestBreakdown_EmptyCart verifies the documented boundary: an empty cart
// still pays the flat shipping fee.
func TestBreakdown_EmptyCart(t *testing.T) {
	t.Parallel()

	b := defaultRates().Breakdown(nil)
	assert.Equal(t, 0.0, b.Subtotal)
	assert.Equal(t, 5.99, b.Shipping)
	assert.Equal(t, 0.0, b.Tax)
	assert.Equal(t, 5.99, b.Total)
}

// TestBreakdown_ShippingThreshold verifies shipping is free strictly above
// the threshold and charged at or below it.
func TestBreakdown_ShippingThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subtotal float64
		shipping float64
	}{
		{"below threshold", 49.99, 5.99},
		{"exactly at threshold", 50.00, 5.99},
		{"just above threshold", 50.01, 0},
		{"well above threshold", 120.00, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := defaultRates().Breakdown([]model.CartLine{line(tt.subtotal, 1)})
			assert.InDelta(t, tt.subtotal, b.Subtotal, 1e-9)
			assert.Equal(t, tt.shipping, b.Shipping)
		})
	}
}

// TestBreakdown_TotalIsSumOfParts verifies the invariant
// total = subtotal + shipping + tax across a spread of carts.
func TestBreakdown_TotalIsSumOfParts(t *testing.T) {
	t.Parallel()

	carts := [][]model.CartLine{
		nil,
		{line(9.99, 1)},
		{line(9.99, 3), line(0.01, 7)},
		{line(25.00, 2)},
		{line(19.99, 2), line(5.50, 4), line(120.00, 1)},
	}

	rates := defaultRates()
	for _, lines := range carts {
		b := rates.Breakdown(lines)
		assert.InDelta(t, b.Subtotal+b.Shipping+b.Tax, b.Total, 1e-9)

		rounded := Rounded(b)
		assert.Equal(t, rounded.Total, Round2(rounded.Subtotal+rounded.Shipping+rounded.Tax))
	}
}

// TestBreakdown_TaxRate verifies tax is derived from the subtotal alone,
// never from subtotal plus shipping.
func TestBreakdown_TaxRate(t *testing.T) {
	t.Parallel()

	b := defaultRates().Breakdown([]model.CartLine{line(10.00, 2)})
	assert.InDelta(t, 20.00, b.Subtotal, 1e-9)
	assert.InDelta(t, 1.60, b.Tax, 1e-9)
	assert.Equal(t, 5.99, b.Shipping)
	assert.InDelta(t, 27.59, b.Total, 1e-9)
}

// TestBreakdown_Deterministic verifies repeated derivation from the same
// lines never drifts.
func TestBreakdown_Deterministic(t *testing.T) {
	t.Parallel()

	lines := []model.CartLine{line(3.33, 3), line(7.77, 2)}
	rates := defaultRates()

	first := rates.Breakdown(lines)
	for i := 0; i < 1000; i++ {
		require.Equal(t, first, rates.Breakdown(lines))
	}
}

// TestBreakdown_ConfiguredRates verifies the constants come from
// configuration rather than being baked in.
func TestBreakdown_ConfiguredRates(t *testing.T) {
	t.Parallel()

	rates := Rates{FreeShippingThreshold: 10, FlatShippingFee: 2.50, TaxRate: 0.20}

	b := rates.Breakdown([]model.CartLine{line(8.00, 1)})
	assert.Equal(t, 2.50, b.Shipping)
	assert.InDelta(t, 1.60, b.Tax, 1e-9)

	b = rates.Breakdown([]model.CartLine{line(11.00, 1)})
	assert.Equal(t, 0.0, b.Shipping)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.01, Round2(1.006))
	assert.Equal(t, 1.0, Round2(1.004))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -2.35, Round2(-2.346))
	assert.Equal(t, 27.59, Round2(27.590000000000003))
}
