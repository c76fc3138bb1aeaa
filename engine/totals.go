package engine

import (
	"math"
	"time"

	"brew-and-bite-api/models"
)

// GSTRate is the flat tax applied to the cart subtotal.
const GSTRate = 0.05

// OrderTotals breaks a cart down into subtotal, GST, and grand total, all in
// whole rupees.
type OrderTotals struct {
	Subtotal int `json:"subtotal"`
	GST      int `json:"gst"`
	Total    int `json:"total"`
}

// Totals sums the cart and applies GST. The GST rounding convention is pinned
// to math.Round, i.e. half away from zero: a 250 subtotal carries 13 GST.
func Totals(cart []models.CartLine) OrderTotals {
	subtotal := 0
	for _, line := range cart {
		subtotal += line.Price * line.Quantity
	}
	gst := int(math.Round(float64(subtotal) * GSTRate))
	return OrderTotals{
		Subtotal: subtotal,
		GST:      gst,
		Total:    subtotal + gst,
	}
}

// EstimatePreparation is two minutes per unit of quantity across all cart
// lines, with no cap and no minimum.
func EstimatePreparation(cart []models.CartLine) time.Duration {
	quantity := 0
	for _, line := range cart {
		quantity += line.Quantity
	}
	return time.Duration(quantity) * 2 * time.Minute
}
