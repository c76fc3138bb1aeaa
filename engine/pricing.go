package engine

import (
	"math"
	"time"

	"brew-and-bite-api/catalog"
)

// PricedMenuItem is a menu item with time-of-day pricing applied. Price inside
// the embedded item is the adjusted price; OriginalPrice always keeps the
// static catalog price.
type PricedMenuItem struct {
	catalog.MenuItem
	OriginalPrice int    `json:"original_price"`
	PriceReason   string `json:"price_reason,omitempty"`
}

// Display reasons for the pricing rules.
const (
	ReasonHappyHour   = "Happy Hour!"
	ReasonClosingTime = "Closing Time Deal!"
	ReasonPeakHour    = "Peak Hour Pricing"
)

// PriceItems applies the time-window price rules, in order, to every item.
// Rules compound: each rule multiplies the price as already adjusted by
// earlier rules and rounds to the nearest rupee before the next rule runs. The
// last rule to fire owns the displayed reason even when an earlier discount is
// still baked into the price.
func PriceItems(items []catalog.MenuItem, now time.Time) []PricedMenuItem {
	hour := now.Hour()
	priced := make([]PricedMenuItem, 0, len(items))
	for _, item := range items {
		p := PricedMenuItem{MenuItem: item, OriginalPrice: item.Price}
		if hour >= 16 && hour < 18 && item.MealSection == catalog.SectionDrinks && item.Type == "cold" {
			p.Price = roundRupees(float64(p.Price) * 0.8)
			p.PriceReason = ReasonHappyHour
		}
		if hour >= 21 && item.MealSection != catalog.SectionDrinks {
			p.Price = roundRupees(float64(p.Price) * 0.7)
			p.PriceReason = ReasonClosingTime
		}
		if hour == 13 && item.BasePopularity >= 9 {
			p.Price = roundRupees(float64(p.Price) * 1.1)
			p.PriceReason = ReasonPeakHour
		}
		priced = append(priced, p)
	}
	return priced
}

// roundRupees rounds half away from zero, matching the totals contract.
func roundRupees(v float64) int {
	return int(math.Round(v))
}
