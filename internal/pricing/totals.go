package pricing

import (
	"time"

	"fruitshop/internal/models"
)

// Shop defaults applied when the loaded settings leave a field unset.
const (
	defaultShippingFee     = 50
	defaultFreeShippingMin = 500
)

// OrderTotals is the full order breakdown. Total never goes negative.
type OrderTotals struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
}

// Shipping returns the fee for an order of the given subtotal: the flat fee,
// waived above the free-shipping threshold or by a valid free-shipping promo.
func Shipping(settings models.Settings, subtotal float64, promo PromoResult) float64 {
	fee := settings.ShippingFee
	if fee == 0 {
		fee = defaultShippingFee
	}

	threshold := settings.FreeShippingMinOrder
	if threshold == 0 {
		threshold = defaultFreeShippingMin
	}
	if subtotal >= threshold {
		return 0
	}

	if promo.freeShipping() {
		return 0
	}
	return fee
}

// Subtotal sums the cart lines at their current unit prices.
func Subtotal(lines []models.CartLine) float64 {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return subtotal
}

// OrderTotal combines subtotal, promo discount and shipping. An invalid
// promo code contributes nothing; it is not an error at this level.
func OrderTotal(lines []models.CartLine, settings models.Settings, promos []models.Promotion, code string, now time.Time) OrderTotals {
	subtotal := Subtotal(lines)

	var promo PromoResult
	if code != "" {
		promo = ValidatePromoCode(promos, settings.CurrencySymbol, code, subtotal, now)
	}

	totals := OrderTotals{
		Subtotal:    subtotal,
		Discount:    promo.Discount,
		ShippingFee: Shipping(settings, subtotal, promo),
		Currency:    settings.CurrencySymbol,
	}
	if totals.Currency == "" {
		totals.Currency = "฿"
	}

	totals.Total = subtotal - totals.Discount + totals.ShippingFee
	if totals.Total < 0 {
		totals.Total = 0
	}
	return totals
}
