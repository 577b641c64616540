package pricing

import (
	"math"

	"minicart/config"
	"minicart/model"
)

// Rates are the storefront pricing constants. They come from configuration,
// not from the backend: the server stores line prices, the client derives the
// order summary.
type Rates struct {
	FreeShippingThreshold float64
	FlatShippingFee       float64
	TaxRate               float64
}

func RatesFromConfig(cfg config.Config) Rates {
	return Rates{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		TaxRate:               cfg.TaxRate,
	}
}

// Breakdown derives the order summary from the given cart lines. Pure and
// deterministic; no rounding happens here so repeated derivations never
// compound an error. Round only at presentation.
//
// Shipping is free strictly above the threshold. A subtotal of exactly the
// threshold, or of zero (empty cart), pays the flat fee: with the defaults an
// empty cart prices at 0 / 5.99 / 0 / 5.99.
func (r Rates) Breakdown(lines []model.CartLine) model.PriceBreakdown {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	shipping := r.FlatShippingFee
	if subtotal > r.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * r.TaxRate

	return model.PriceBreakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Round2 rounds to 2 decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a presentation copy of b with every figure at 2 decimal
// places. Total is re-derived from the rounded parts so the displayed
// summary always adds up exactly.
func Rounded(b model.PriceBreakdown) model.PriceBreakdown {
	out := model.PriceBreakdown{
		Subtotal: Round2(b.Subtotal),
		Shipping: Round2(b.Shipping),
		Tax:      Round2(b.Tax),
	}
	out.Total = Round2(out.Subtotal + out.Shipping + out.Tax)
	return out
}
