package services

import (
	"github.com/shopspring/decimal"

	"github.com/ecomdemo/storefront-api/models"
)

// ShippingPolicy maps a cart subtotal to a shipping cost. It is a
// pluggable function so regional cost tables can replace the default
// threshold rule without touching the totals math.
type ShippingPolicy func(subtotal decimal.Decimal) decimal.Decimal

// ThresholdShipping ships free above the threshold, else charges a flat
// fee.
func ThresholdShipping(threshold, flatFee decimal.Decimal) ShippingPolicy {
	return func(subtotal decimal.Decimal) decimal.Decimal {
		if subtotal.GreaterThan(threshold) {
			return decimal.Zero
		}
		return flatFee
	}
}

// Totals is the priced view of a cart. The amounts are computed with
// exact decimal arithmetic; rounding to two places happens once, in
// Rounded, never mid-computation.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	// MissingProducts lists cart lines whose product no longer exists in
	// the catalog. They contribute zero to the subtotal rather than
	// aborting the computation.
	MissingProducts []string
}

// RoundedTotals is the two-decimal display form, the only place rounding
// is applied.
type RoundedTotals struct {
	Subtotal        float64  `json:"subtotal"`
	Shipping        float64  `json:"shipping"`
	Tax             float64  `json:"tax"`
	Total           float64  `json:"total"`
	MissingProducts []string `json:"missingProducts,omitempty"`
}

func (t Totals) Rounded() RoundedTotals {
	return RoundedTotals{
		Subtotal:        t.Subtotal.Round(2).InexactFloat64(),
		Shipping:        t.Shipping.Round(2).InexactFloat64(),
		Tax:             t.Tax.Round(2).InexactFloat64(),
		Total:           t.Total.Round(2).InexactFloat64(),
		MissingProducts: t.MissingProducts,
	}
}

// TotalsCalculator prices carts against the current catalog. Prices are
// resolved at computation time, never cached on the cart, so totals
// always reflect what the products cost right now.
type TotalsCalculator struct {
	Shipping ShippingPolicy
	TaxRate  decimal.Decimal
}

// NewTotalsCalculator builds the default policy: free shipping above
// 100.00, else 9.99 flat, and 6% tax.
func NewTotalsCalculator() *TotalsCalculator {
	return &TotalsCalculator{
		Shipping: ThresholdShipping(decimal.NewFromInt(100), decimal.RequireFromString("9.99")),
		TaxRate:  decimal.RequireFromString("0.06"),
	}
}

// Compute prices the cart. total = subtotal + shipping + tax, evaluated
// left to right on exact decimals.
func (c *TotalsCalculator) Compute(cart models.Cart, products []models.Product) Totals {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subtotal := decimal.Zero
	var missing []string
	for _, it := range cart.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			missing = append(missing, it.ProductID)
			continue
		}
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Qty)))
		subtotal = subtotal.Add(line)
	}

	shipping := c.Shipping(subtotal)
	tax := subtotal.Mul(c.TaxRate)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		MissingProducts: missing,
	}
}
